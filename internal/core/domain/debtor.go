package domain

type Debtor struct {
	UID                  int64   `json:"uid"`
	EntityUID            int64   `json:"entity_uid"`
	Name                 string  `json:"name"`
	Surname              string  `json:"surname"`
	Initials             string  `json:"initials"`
	Title                string  `json:"title"`
	IDType               string  `json:"id_type"`
	IDNo                 string  `json:"id_no"`
	MobileNo             string  `json:"mobile_no"`
	Email                string  `json:"email"`
	FileNo               string  `json:"file_no"`
	Gender               string  `json:"gender"`
	AccIdentifier        string  `json:"acc_identifier"`
	Patients             []int64 `json:"patients"`
	MedicalAidOptionUID  *int64  `json:"medical_aid_option_uid"`
	MedicalAidNo         string  `json:"medical_aid_no"`
	MedicalAidSchemeCode string  `json:"medical_aid_scheme_code"`
}

func (d Debtor) FullName() string {
	return joinName(d.Name, d.Surname)
}
