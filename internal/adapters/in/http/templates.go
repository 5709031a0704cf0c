package http

import (
	"embed"
	"html/template"
	"strconv"

	"github.com/suchimauz/goodx-diary-web/internal/config"
	"github.com/suchimauz/goodx-diary-web/internal/core/json_types"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"clock": func(t json_types.LocalDateTime) string {
		if t.IsZero() {
			return ""
		}
		return t.Date.In(config.TimeZone).Format("15:04")
	},
	"uid": func(v int64) string {
		return strconv.FormatInt(v, 10)
	},
	"dashboardURL": func(diaryUID int64, date string) string {
		return dashboardPath + "?diary=" + strconv.FormatInt(diaryUID, 10) + "&date=" + date
	},
}

func parseTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
}
