package domain

type BookingStatus struct {
	UID                  int64  `json:"uid"`
	EntityUID            int64  `json:"entity_uid"`
	DiaryUID             int64  `json:"diary_uid"`
	Name                 string `json:"name"`
	NextBookingStatusUID *int64 `json:"next_booking_status_uid"`
	IsArrived            bool   `json:"is_arrived"`
	IsFinal              bool   `json:"is_final"`
	Disabled             bool   `json:"disabled"`
}

// DeriveBookingStatus выбирает статус для новой или измененной записи:
// статус по умолчанию из типа записи, иначе первый статус дневника
func DeriveBookingStatus(bookingType *BookingType, statuses []BookingStatus) (int64, error) {
	if bookingType != nil && bookingType.BookingStatusUID != nil && *bookingType.BookingStatusUID != 0 {
		return *bookingType.BookingStatusUID, nil
	}
	if len(statuses) > 0 {
		return statuses[0].UID, nil
	}
	return 0, ErrNoBookingStatus
}
