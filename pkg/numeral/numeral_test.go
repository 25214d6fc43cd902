package numeral

import (
	"encoding/json"
	"testing"
)

func TestFlexibleUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"plain integer", `120`, 120},
		{"plain decimal", `-4.25`, -4.25},
		{"numeric string", `"12.5"`, 12.5},
		{"tagged int", `{"$numberInt": "5"}`, 5},
		{"tagged double", `{"$numberDouble": "1.575"}`, 1.575},
		{"tagged long", `{"$numberLong": "9000000"}`, 9000000},
		{"tagged negative", `{"$numberDouble": "-0.5"}`, -0.5},
		{"null", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Flexible
			if err := json.Unmarshal([]byte(tt.in), &f); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.in, err)
			}
			if f.Float64() != tt.want {
				t.Errorf("got %v, want %v", f.Float64(), tt.want)
			}
		})
	}
}

func TestFlexibleUnmarshalErrors(t *testing.T) {
	for _, in := range []string{
		`{"$numberOctal": "7"}`,
		`{"$numberInt": "not-a-number"}`,
		`"12.5g"`,
		`[1]`,
	} {
		var f Flexible
		if err := json.Unmarshal([]byte(in), &f); err == nil {
			t.Errorf("Unmarshal(%s): expected error, got %v", in, f)
		}
	}
}

func TestFlexibleMarshalPlain(t *testing.T) {
	out, err := json.Marshal(Flexible(-1.5))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "-1.5" {
		t.Errorf("Marshal = %s, want -1.5", out)
	}
}

func TestFlexibleRoundTripInStruct(t *testing.T) {
	var payload struct {
		Balance Flexible `json:"balance"`
	}
	if err := json.Unmarshal([]byte(`{"balance": {"$numberLong": "-42"}}`), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Balance.Float64() != -42 {
		t.Errorf("balance = %v, want -42", payload.Balance)
	}
}
