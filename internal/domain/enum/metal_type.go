package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// MetalType is the metal a receipt is denominated in
type MetalType int

const (
	// MetalTypeUnspecified marks a submission that never chose a metal.
	// It fails IsValid, so the schema gate rejects it before anything is
	// persisted; the zero value stays gold for stored rows.
	MetalTypeUnspecified MetalType = -1

	MetalTypeGold   MetalType = 0
	MetalTypeSilver MetalType = 1
)

func (t MetalType) String() string {
	names := [...]string{"gold", "silver"}
	if int(t) < 0 || int(t) >= len(names) {
		return "gold"
	}
	return names[t]
}

// IsValid reports whether the value is a known metal type.
func (t MetalType) IsValid() bool {
	return t == MetalTypeGold || t == MetalTypeSilver
}

// ParseMetalType maps the wire string to a MetalType.
func ParseMetalType(s string) (MetalType, bool) {
	switch s {
	case "gold":
		return MetalTypeGold, true
	case "silver":
		return MetalTypeSilver, true
	}
	return MetalTypeUnspecified, false
}

func (t MetalType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *MetalType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = MetalType(i)
		return nil
	}
	switch str {
	case "gold":
		*t = MetalTypeGold
	case "silver":
		*t = MetalTypeSilver
	}
	return nil
}

func (t MetalType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *MetalType) Scan(value interface{}) error {
	if value == nil {
		*t = MetalTypeGold
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = MetalType(v)
	case int:
		*t = MetalType(v)
	}
	return nil
}
