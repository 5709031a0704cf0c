package domain

import "time"

type DashboardState string

const (
	DashboardStateNoDiary DashboardState = "no_diary"
	DashboardStateNoDate  DashboardState = "no_date"
	DashboardStateReady   DashboardState = "ready"
	DashboardStateError   DashboardState = "error"
)

type DashboardQuery struct {
	DiaryUID         *int64
	Date             *time.Time
	ConfirmDeleteUID *int64
}

// Dashboard - снимок экрана расписания для одного запроса
type Dashboard struct {
	State         DashboardState
	Diaries       []Diary
	Diary         *Diary
	Date          *time.Time
	Bookings      []Booking
	PendingDelete *Booking
	Error         string

	// GoodX отклонил сессию, нужен повторный логин
	SessionExpired bool
}

func (d Dashboard) DateString() string {
	if d.Date == nil {
		return ""
	}
	return d.Date.Format("2006-01-02")
}
