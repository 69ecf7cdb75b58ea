package models

import (
	"strings"
	"unicode/utf8"

	dErrors "emissions/pkg/domain-errors"
)

// LegacyKosovoCode is the one accepted code that is not three characters long.
const LegacyKosovoCode ISOCode = "OWID_KOS"

const isoCodeLength = 3

// ISOCode identifies a country or territory.
type ISOCode string

// ParseISOCode validates raw as an ISO code. Surrounding whitespace is ignored;
// case is preserved.
func ParseISOCode(raw string) (ISOCode, error) {
	code := ISOCode(strings.TrimSpace(raw))
	if code == LegacyKosovoCode {
		return code, nil
	}
	if utf8.RuneCountInString(string(code)) != isoCodeLength {
		return "", dErrors.New(dErrors.CodeInvariantViolation, "iso code must be 3 characters: "+string(code))
	}
	return code, nil
}

func (c ISOCode) String() string {
	return string(c)
}
