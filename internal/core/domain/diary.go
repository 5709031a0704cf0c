package domain

import "github.com/google/uuid"

type Diary struct {
	UID               int64         `json:"uid"`
	EntityUID         int64         `json:"entity_uid"`
	Name              string        `json:"name"`
	TreatingDoctorUID *int64        `json:"treating_doctor_uid"`
	ServiceCenterUID  *int64        `json:"service_center_uid"`
	BookingTypeUID    *int64        `json:"booking_type_uid"`
	UUID              uuid.NullUUID `json:"uuid"`
	Disabled          bool          `json:"disabled"`
}

// FindDiary возвращает дневник с указанным uid, либо первый из списка если uid не задан или не найден
func FindDiary(diaries []Diary, uid *int64) (*Diary, bool) {
	if len(diaries) == 0 {
		return nil, false
	}
	if uid != nil {
		for i := range diaries {
			if diaries[i].UID == *uid {
				return &diaries[i], true
			}
		}
	}
	return &diaries[0], true
}
