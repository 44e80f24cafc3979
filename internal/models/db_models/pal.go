package db_models

// PalAvailability lists the open slots for one date. Dates and slots are kept
// sorted ascending; a slot appears in at most one entry per date.
type PalAvailability struct {
	Date  string   `json:"date"`  // "2026-08-29"
	Slots []string `json:"slots"` // "09:00-11:00"
}

type Pal struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Rating          float64           `json:"rating"`
	ExperienceYears int               `json:"experience_years"`
	Specializations []string          `json:"specializations"`
	Availability    []PalAvailability `json:"availability"`
}
