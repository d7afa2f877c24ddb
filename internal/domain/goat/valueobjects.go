package goat

// Gender of an animal. Parent links are gender-checked: mother must be
// FEMALE, father must be MALE.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

func (g Gender) String() string { return string(g) }

// Status is an animal's lifecycle status.
type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusSold       Status = "SOLD"
	StatusDeceased   Status = "DECEASED"
	StatusQuarantine Status = "QUARANTINE"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSold, StatusDeceased, StatusQuarantine:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }
