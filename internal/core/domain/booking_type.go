package domain

import "github.com/google/uuid"

type BookingType struct {
	UID              int64         `json:"uid"`
	EntityUID        int64         `json:"entity_uid"`
	DiaryUID         int64         `json:"diary_uid"`
	Name             string        `json:"name"`
	BookingStatusUID *int64        `json:"booking_status_uid"`
	Disabled         bool          `json:"disabled"`
	UUID             uuid.NullUUID `json:"uuid"`
}

func FindBookingType(types []BookingType, uid int64) (*BookingType, bool) {
	for i := range types {
		if types[i].UID == uid {
			return &types[i], true
		}
	}
	return nil, false
}
