package http

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/goodx-diary-web/internal/config"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
)

// newAPIProxy проксирует /api/* в GoodX без префикса, Host подменяется на апстрим
func newAPIProxy(cfg *config.Config, logger out.LoggerPort) (gin.HandlerFunc, error) {
	target, err := url.Parse(cfg.Goodx.URL)
	if err != nil {
		return nil, err
	}
	prefix := strings.TrimRight(cfg.Proxy.Prefix, "/")

	proxy := &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.Out.URL.Path = singleJoiningSlash(target.Path, strings.TrimPrefix(r.In.URL.Path, prefix))
			r.Out.URL.RawPath = ""
			r.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Error("http.proxy.failed", out.LogFields{
				"path":  r.URL.Path,
				"error": err.Error(),
			})
			w.WriteHeader(http.StatusBadGateway)
		},
	}

	return func(ctx *gin.Context) {
		proxy.ServeHTTP(ctx.Writer, ctx.Request)
	}, nil
}

func singleJoiningSlash(a, b string) string {
	aslash := strings.HasSuffix(a, "/")
	bslash := strings.HasPrefix(b, "/")
	switch {
	case aslash && bslash:
		return a + b[1:]
	case !aslash && !bslash:
		return a + "/" + b
	}
	return a + b
}
