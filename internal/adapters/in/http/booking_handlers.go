package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/goodx-diary-web/internal/core/domain"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/in"
	"github.com/suchimauz/goodx-diary-web/internal/utils"
)

type BookingFormRequest struct {
	Diary          int64  `form:"diary" binding:"required"`
	Date           string `form:"date" binding:"required"`
	PatientUID     int64  `form:"patient_uid" binding:"required"`
	BookingTypeUID int64  `form:"booking_type_uid" binding:"required"`
	Time           string `form:"time" binding:"required"`
	Duration       int    `form:"duration" binding:"required"`
	Reason         string `form:"reason" binding:"max=500"`
}

type bookingFormView struct {
	Form     *domain.BookingForm
	DiaryUID int64
	Date     string
	Action   string
	Error    string
	Usable   bool
}

func (v bookingFormView) BackURL() string {
	diaryUID := v.DiaryUID
	date, err := utils.ParseDate(v.Date)
	if err != nil {
		return dashboardURL(&diaryUID, nil)
	}
	return dashboardURL(&diaryUID, &date)
}

func (c *DiaryWebController) newBooking(ctx *gin.Context) {
	c.openBookingForm(ctx, nil)
}

func (c *DiaryWebController) editBooking(ctx *gin.Context) {
	bookingUID, err := strconv.ParseInt(ctx.Param("uid"), 10, 64)
	if err != nil {
		ctx.String(http.StatusBadRequest, "Invalid booking ID")
		return
	}
	c.openBookingForm(ctx, &bookingUID)
}

func (c *DiaryWebController) openBookingForm(ctx *gin.Context, bookingUID *int64) {
	diaryUID := queryInt64(ctx, "diary")
	date := queryDate(ctx, "date")
	if diaryUID == nil || date == nil {
		// Форма открывается только для выбранных дневника и даты
		ctx.Redirect(http.StatusFound, dashboardURL(diaryUID, date))
		return
	}

	input := in.OpenBookingFormInput{
		DiaryUID:   *diaryUID,
		Date:       *date,
		BookingUID: bookingUID,
	}
	session := sessionFrom(ctx)
	form, err := c.bookingForm.Open(ctx.Request.Context(), session, input)
	if errors.Is(err, domain.ErrSessionExpired) {
		c.expireSession(ctx, session)
		return
	}

	view := newBookingFormView(input, form)
	status := http.StatusOK
	if err != nil {
		view.Error = domain.BookingFormErrorMessage(err, bookingUID != nil)
		view.Usable = false
		status = formErrorStatus(err)
	}

	ctx.HTML(status, "booking_form.html", view)
}

func (c *DiaryWebController) createBooking(ctx *gin.Context) {
	c.submitBookingForm(ctx, nil)
}

func (c *DiaryWebController) updateBooking(ctx *gin.Context) {
	bookingUID, err := strconv.ParseInt(ctx.Param("uid"), 10, 64)
	if err != nil {
		ctx.String(http.StatusBadRequest, "Invalid booking ID")
		return
	}
	c.submitBookingForm(ctx, &bookingUID)
}

func (c *DiaryWebController) submitBookingForm(ctx *gin.Context, bookingUID *int64) {
	session := sessionFrom(ctx)
	editing := bookingUID != nil

	var req BookingFormRequest
	if err := ctx.ShouldBind(&req); err != nil {
		diaryUID := formInt64(ctx, "diary")
		date := formDate(ctx, "date")
		if diaryUID == nil || date == nil {
			ctx.Redirect(http.StatusSeeOther, dashboardURL(diaryUID, date))
			return
		}
		c.renderSubmitError(ctx, session, in.OpenBookingFormInput{
			DiaryUID:   *diaryUID,
			Date:       *date,
			BookingUID: bookingUID,
		}, nil, "Invalid booking form: "+err.Error(), http.StatusBadRequest)
		return
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		ctx.Redirect(http.StatusSeeOther, dashboardURL(&req.Diary, nil))
		return
	}

	openInput := in.OpenBookingFormInput{
		DiaryUID:   req.Diary,
		Date:       date,
		BookingUID: bookingUID,
	}

	hour, minute, err := utils.ParseClock(req.Time)
	if err != nil {
		c.renderSubmitError(ctx, session, openInput, nil, "Invalid booking time", http.StatusBadRequest)
		return
	}

	values := domain.BookingFormValues{
		PatientUID:     req.PatientUID,
		BookingTypeUID: req.BookingTypeUID,
		Hour:           hour,
		Minute:         minute,
		Duration:       req.Duration,
		Reason:         req.Reason,
	}

	err = c.bookingForm.Submit(ctx.Request.Context(), session, in.SubmitBookingFormInput{
		DiaryUID:   req.Diary,
		Date:       date,
		BookingUID: bookingUID,
		Values:     values,
	})
	if errors.Is(err, domain.ErrSessionExpired) {
		c.expireSession(ctx, session)
		return
	}
	if err != nil {
		c.renderSubmitError(ctx, session, openInput, &values, domain.BookingFormErrorMessage(err, editing), formErrorStatus(err))
		return
	}

	// После сохранения список перечитывается на дашборде
	ctx.Redirect(http.StatusSeeOther, dashboardURL(&req.Diary, &date))
}

// renderSubmitError оставляет форму открытой с ошибкой и введенными значениями
func (c *DiaryWebController) renderSubmitError(
	ctx *gin.Context,
	session *domain.Session,
	input in.OpenBookingFormInput,
	values *domain.BookingFormValues,
	message string,
	status int,
) {
	form, err := c.bookingForm.Open(ctx.Request.Context(), session, input)

	view := newBookingFormView(input, form)
	view.Error = message
	if err != nil {
		view.Usable = false
	}
	if form != nil && values != nil {
		form.Values = *values
	}

	ctx.HTML(status, "booking_form.html", view)
}

func newBookingFormView(input in.OpenBookingFormInput, form *domain.BookingForm) bookingFormView {
	view := bookingFormView{
		Form:     form,
		DiaryUID: input.DiaryUID,
		Date:     input.Date.Format(time.DateOnly),
		Action:   dashboardPath + "/bookings",
		Usable:   form != nil && form.Error == "",
	}
	if input.BookingUID != nil {
		view.Action = dashboardPath + "/bookings/" + strconv.FormatInt(*input.BookingUID, 10)
	}
	return view
}

func formErrorStatus(err error) int {
	var loadErr *domain.ReferenceLoadError
	switch {
	case errors.As(err, &loadErr):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
