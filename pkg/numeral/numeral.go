// Package numeral decodes numeric fields that may arrive either as plain
// JSON numbers or wrapped in the tagged shapes produced by the shop's old
// document-store export ({"$numberInt": "5"}, {"$numberDouble": "1.5"},
// {"$numberLong": "42"}).
package numeral

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Flexible is a float64 that unmarshals from a plain number, a numeric
// string, or a tagged wrapper object. The zero value decodes from JSON
// null as well, so optional fields stay optional.
type Flexible float64

type taggedNumber struct {
	Int    *string `json:"$numberInt"`
	Double *string `json:"$numberDouble"`
	Long   *string `json:"$numberLong"`
}

// Float64 returns the underlying value.
func (f Flexible) Float64() float64 {
	return float64(f)
}

// MarshalJSON always writes the plain numeric form; the tagged shapes are
// an input-only legacy.
func (f Flexible) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// UnmarshalJSON accepts any of the supported encodings.
func (f *Flexible) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = 0
		return nil
	}

	var plain float64
	if err := json.Unmarshal(data, &plain); err == nil {
		*f = Flexible(plain)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("numeral: invalid numeric string %q", s)
		}
		*f = Flexible(v)
		return nil
	}

	var tagged taggedNumber
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("numeral: unsupported encoding %s", data)
	}

	raw := ""
	switch {
	case tagged.Int != nil:
		raw = *tagged.Int
	case tagged.Double != nil:
		raw = *tagged.Double
	case tagged.Long != nil:
		raw = *tagged.Long
	default:
		return fmt.Errorf("numeral: unsupported encoding %s", data)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("numeral: invalid tagged value %q", raw)
	}
	*f = Flexible(v)
	return nil
}
