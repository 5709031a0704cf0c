package http

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/utils"
)

type dashboardView struct {
	domain.Dashboard
	Username string
}

func (c *DiaryWebController) showDashboard(ctx *gin.Context) {
	session := sessionFrom(ctx)

	dashboard := c.dashboard.Load(ctx.Request.Context(), session, domain.DashboardQuery{
		DiaryUID:         queryInt64(ctx, "diary"),
		Date:             queryDate(ctx, "date"),
		ConfirmDeleteUID: queryInt64(ctx, "confirm_delete"),
	})
	if dashboard.SessionExpired {
		c.expireSession(ctx, session)
		return
	}

	ctx.HTML(http.StatusOK, "dashboard.html", dashboardView{
		Dashboard: dashboard,
		Username:  session.Username,
	})
}

// cancelBooking - подтвержденное мягкое удаление записи
func (c *DiaryWebController) cancelBooking(ctx *gin.Context) {
	session := sessionFrom(ctx)

	bookingUID, err := strconv.ParseInt(ctx.Param("uid"), 10, 64)
	if err != nil {
		ctx.String(http.StatusBadRequest, "Invalid booking ID")
		return
	}

	diaryUID := formInt64(ctx, "diary")
	date := formDate(ctx, "date")

	if err := c.dashboard.DeleteBooking(ctx.Request.Context(), session, bookingUID); err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			c.expireSession(ctx, session)
			return
		}

		dashboard := c.dashboard.Load(ctx.Request.Context(), session, domain.DashboardQuery{
			DiaryUID: diaryUID,
			Date:     date,
		})
		dashboard.Error = "Failed to delete booking: " + err.Error()

		ctx.HTML(http.StatusBadGateway, "dashboard.html", dashboardView{
			Dashboard: dashboard,
			Username:  session.Username,
		})
		return
	}

	// Список всегда перечитывается с сервера
	ctx.Redirect(http.StatusSeeOther, dashboardURL(diaryUID, date))
}

func dashboardURL(diaryUID *int64, date *time.Time) string {
	query := url.Values{}
	if diaryUID != nil {
		query.Set("diary", strconv.FormatInt(*diaryUID, 10))
	}
	if date != nil {
		query.Set("date", date.Format("2006-01-02"))
	}
	if len(query) == 0 {
		return dashboardPath
	}
	return dashboardPath + "?" + query.Encode()
}

func parseInt64(value string) *int64 {
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := utils.ParseDate(value)
	if err != nil {
		return nil
	}
	return &parsed
}

func queryInt64(ctx *gin.Context, key string) *int64 {
	return parseInt64(ctx.Query(key))
}

func queryDate(ctx *gin.Context, key string) *time.Time {
	return parseDate(ctx.Query(key))
}

func formInt64(ctx *gin.Context, key string) *int64 {
	return parseInt64(ctx.PostForm(key))
}

func formDate(ctx *gin.Context, key string) *time.Time {
	return parseDate(ctx.PostForm(key))
}
