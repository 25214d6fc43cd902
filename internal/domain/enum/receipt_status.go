package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ReceiptStatus tells whether the client has returned any metal yet
type ReceiptStatus int

const (
	ReceiptStatusIncomplete ReceiptStatus = 0
	ReceiptStatusComplete   ReceiptStatus = 1
)

func (s ReceiptStatus) String() string {
	names := [...]string{"incomplete", "complete"}
	if int(s) < 0 || int(s) >= len(names) {
		return "incomplete"
	}
	return names[s]
}

func (s ReceiptStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ReceiptStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ReceiptStatus(i)
		return nil
	}
	switch str {
	case "incomplete":
		*s = ReceiptStatusIncomplete
	case "complete":
		*s = ReceiptStatusComplete
	}
	return nil
}

func (s ReceiptStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ReceiptStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ReceiptStatusIncomplete
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ReceiptStatus(v)
	case int:
		*s = ReceiptStatus(v)
	}
	return nil
}
