package models

// Record is one already-tokenized input row. Numeric fields keep their textual
// form until the registry coerces them.
type Record struct {
	Code       string
	Name       string
	Continents string
	Year       string
	CO2        string
	Population string
}

// Observation parses the record's yearly fields.
func (r Record) Observation() (Observation, error) {
	return ParseObservation(r.Year, r.CO2, r.Population)
}
