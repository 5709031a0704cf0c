package domain

import "github.com/suchimauz/goodx-diary-web/internal/core/json_types"

type Patient struct {
	UID         int64            `json:"uid"`
	EntityUID   int64            `json:"entity_uid"`
	DebtorUID   *int64           `json:"debtor_uid"`
	Name        string           `json:"name"`
	Surname     string           `json:"surname"`
	Initials    string           `json:"initials"`
	Title       string           `json:"title"`
	IDType      string           `json:"id_type"`
	IDNo        string           `json:"id_no"`
	DateOfBirth *json_types.Date `json:"date_of_birth"`
	MobileNo    string           `json:"mobile_no"`
	Email       string           `json:"email"`
	FileNo      string           `json:"file_no"`
	Gender      string           `json:"gender"`
}

func (p Patient) FullName() string {
	return joinName(p.Name, p.Surname)
}
