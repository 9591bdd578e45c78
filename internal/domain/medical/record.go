package medical

// EmergencyContact is the person to call for the record holder.
type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Record is the medical ID shown to first responders.
type Record struct {
	FullName         string           `json:"fullName"`
	BloodGroup       string           `json:"bloodGroup"`
	Allergies        string           `json:"allergies"`
	Medications      string           `json:"medications"`
	Conditions       string           `json:"conditions"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
}

// IsEmpty reports whether no field of the record is filled in.
func (r Record) IsEmpty() bool {
	return r == Record{}
}
