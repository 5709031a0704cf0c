package domain

import (
	"github.com/google/uuid"
	"github.com/suchimauz/goodx-diary-web/internal/core/json_types"
)

type Booking struct {
	UID               int64                    `json:"uid,omitempty"`
	EntityUID         int64                    `json:"entity_uid"`
	DiaryUID          int64                    `json:"diary_uid"`
	BookingTypeUID    int64                    `json:"booking_type_uid"`
	BookingStatusUID  int64                    `json:"booking_status_uid"`
	PatientUID        int64                    `json:"patient_uid"`
	StartTime         json_types.LocalDateTime `json:"start_time"`
	Duration          int                      `json:"duration"`
	TreatingDoctorUID *int64                   `json:"treating_doctor_uid,omitempty"`
	Reason            string                   `json:"reason"`
	InvoiceNr         *string                  `json:"invoice_nr,omitempty"`
	Cancelled         bool                     `json:"cancelled"`
	UUID              uuid.NullUUID            `json:"uuid"`

	// Денормализованные поля, приходят только при чтении
	PatientName    string `json:"patient_name,omitempty"`
	PatientSurname string `json:"patient_surname,omitempty"`
	DebtorName     string `json:"debtor_name,omitempty"`
	DebtorSurname  string `json:"debtor_surname,omitempty"`
}

// NewBooking - запись для создания: только поля, которые принимает GoodX
type NewBooking struct {
	EntityUID        int64                    `json:"entity_uid"`
	DiaryUID         int64                    `json:"diary_uid"`
	BookingTypeUID   int64                    `json:"booking_type_uid"`
	BookingStatusUID int64                    `json:"booking_status_uid"`
	StartTime        json_types.LocalDateTime `json:"start_time"`
	Duration         int                      `json:"duration"`
	PatientUID       int64                    `json:"patient_uid"`
	Reason           string                   `json:"reason"`
	Cancelled        bool                     `json:"cancelled"`
}

// BookingUpdate - изменяемое подмножество записи. Тип, статус, дневник и
// организация после создания не меняются и в обновление не попадают
type BookingUpdate struct {
	UID        int64                    `json:"uid"`
	StartTime  json_types.LocalDateTime `json:"start_time"`
	Duration   int                      `json:"duration"`
	PatientUID int64                    `json:"patient_uid"`
	Reason     string                   `json:"reason"`
	Cancelled  bool                     `json:"cancelled"`
}

// BookingCancel - тело мягкого удаления
type BookingCancel struct {
	UID       int64 `json:"uid"`
	Cancelled bool  `json:"cancelled"`
}

// BookingDraft - очищенная копия записи для формы редактирования
type BookingDraft struct {
	UID            int64
	EntityUID      int64
	DiaryUID       int64
	BookingTypeUID int64
	PatientUID     int64
	StartTime      json_types.LocalDateTime
	Duration       int
	Reason         string
	Cancelled      bool
}

func (b Booking) Draft() BookingDraft {
	return BookingDraft{
		UID:            b.UID,
		EntityUID:      b.EntityUID,
		DiaryUID:       b.DiaryUID,
		BookingTypeUID: b.BookingTypeUID,
		PatientUID:     b.PatientUID,
		StartTime:      b.StartTime,
		Duration:       b.Duration,
		Reason:         b.Reason,
		Cancelled:      b.Cancelled,
	}
}

func (b Booking) PatientFullName() string {
	return joinName(b.PatientName, b.PatientSurname)
}

func (b Booking) DebtorFullName() string {
	return joinName(b.DebtorName, b.DebtorSurname)
}

// ActiveBookings отбрасывает отмененные записи. Отмененные записи остаются
// в GoodX, но в расписании не показываются
func ActiveBookings(bookings []Booking) []Booking {
	active := make([]Booking, 0, len(bookings))
	for _, booking := range bookings {
		if booking.Cancelled {
			continue
		}
		active = append(active, booking)
	}
	return active
}

func FindBooking(bookings []Booking, uid int64) (*Booking, bool) {
	for i := range bookings {
		if bookings[i].UID == uid {
			return &bookings[i], true
		}
	}
	return nil, false
}

func joinName(name, surname string) string {
	switch {
	case name == "":
		return surname
	case surname == "":
		return name
	default:
		return name + " " + surname
	}
}
