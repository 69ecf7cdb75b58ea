package models

import (
	"math"
	"strconv"
	"strings"

	dErrors "emissions/pkg/domain-errors"
)

// notRecorded is the numeric sentinel for a field with no data that year.
// An empty field means the same thing.
const notRecorded = -1

// Observation is one year of data for one country. A field whose Has flag is
// false was not recorded and must not be read as zero.
type Observation struct {
	Year          int
	CO2           float64
	HasCO2        bool
	Population    int64
	HasPopulation bool
}

// ParseObservation coerces the textual year, emissions and population fields.
func ParseObservation(year, co2, population string) (Observation, error) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return Observation{}, dErrors.New(dErrors.CodeValidation, "year must be an integer: "+year)
	}
	obs := Observation{Year: y}

	if raw := strings.TrimSpace(co2); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Observation{}, dErrors.New(dErrors.CodeValidation, "co2 must be a number: "+co2)
		}
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			return Observation{}, dErrors.New(dErrors.CodeValidation, "co2 must be finite: "+co2)
		case v == notRecorded:
		case v < 0:
			return Observation{}, dErrors.New(dErrors.CodeValidation, "co2 must not be negative: "+co2)
		default:
			obs.CO2, obs.HasCO2 = v, true
		}
	}

	if raw := strings.TrimSpace(population); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Observation{}, dErrors.New(dErrors.CodeValidation, "population must be an integer: "+population)
		}
		switch {
		case v == notRecorded:
		case v < 0:
			return Observation{}, dErrors.New(dErrors.CodeValidation, "population must not be negative: "+population)
		default:
			obs.Population, obs.HasPopulation = v, true
		}
	}

	return obs, nil
}

// WithCO2 returns a copy of o with emissions recorded.
func (o Observation) WithCO2(v float64) Observation {
	o.CO2, o.HasCO2 = v, true
	return o
}

// WithPopulation returns a copy of o with population recorded.
func (o Observation) WithPopulation(v int64) Observation {
	o.Population, o.HasPopulation = v, true
	return o
}
