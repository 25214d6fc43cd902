package metal

import (
	"math"
	"strings"
)

// Human-readable rule messages rendered inline next to the offending field.
const (
	msgNameRequired   = "Item name is required"
	msgGrossRange     = "Gross weight must be greater than 0"
	msgStoneNegative  = "Stone weight cannot be negative"
	msgStoneOverGross = "Stone weight cannot exceed gross weight"
	msgMeltingRange   = "Melting must be between 0 and 100"
	msgGoldRange      = "Received gold must be greater than 0"
)

// GivenRowErrors holds the field-level messages for one given row. Empty
// strings mean the field passed.
type GivenRowErrors struct {
	ItemName     string `json:"item_name,omitempty"`
	GrossWeight  string `json:"gross_wt,omitempty"`
	StoneWeight  string `json:"stone_wt,omitempty"`
	MeltingTouch string `json:"melting_touch,omitempty"`
}

// IsZero reports whether the row passed every rule.
func (e GivenRowErrors) IsZero() bool {
	return e == GivenRowErrors{}
}

// ReceivedRowErrors holds the field-level messages for one received row.
type ReceivedRowErrors struct {
	ReceivedGold string `json:"received_gold,omitempty"`
	Melting      string `json:"melting,omitempty"`
}

// IsZero reports whether the row passed every rule.
func (e ReceivedRowErrors) IsZero() bool {
	return e == ReceivedRowErrors{}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidateGivenRow applies the per-row rule set. Balance carry rows bypass
// every rule, including the sign checks: a carried debt is a legitimate
// negative weight.
func ValidateGivenRow(row GivenRow) GivenRowErrors {
	if row.IsBalanceRow() {
		return GivenRowErrors{}
	}

	var errs GivenRowErrors
	if strings.TrimSpace(row.ItemName) == "" {
		errs.ItemName = msgNameRequired
	}
	if !finite(row.GrossWeight) || row.GrossWeight <= 0 {
		errs.GrossWeight = msgGrossRange
	}
	if !finite(row.StoneWeight) || row.StoneWeight < 0 {
		errs.StoneWeight = msgStoneNegative
	} else if row.StoneWeight > row.GrossWeight {
		errs.StoneWeight = msgStoneOverGross
	}
	if !finite(row.MeltingTouch) || row.MeltingTouch <= 0 || row.MeltingTouch > 100 {
		errs.MeltingTouch = msgMeltingRange
	}
	return errs
}

// ValidateGivenRows validates a whole given-item list, keyed by row ID.
// A nil map means every row passed.
func ValidateGivenRows(rows []GivenRow) map[string]GivenRowErrors {
	var out map[string]GivenRowErrors
	for _, row := range rows {
		if errs := ValidateGivenRow(row); !errs.IsZero() {
			if out == nil {
				out = make(map[string]GivenRowErrors)
			}
			out[row.ID] = errs
		}
	}
	return out
}

// ValidateReceivedRow applies the received-item rule set. The caller is
// expected to skip rows without input; this function validates
// unconditionally.
func ValidateReceivedRow(row ReceivedRow) ReceivedRowErrors {
	var errs ReceivedRowErrors
	if !finite(row.ReceivedGold) || row.ReceivedGold <= 0 {
		errs.ReceivedGold = msgGoldRange
	}
	if !finite(row.Melting) || row.Melting <= 0 || row.Melting > 100 {
		errs.Melting = msgMeltingRange
	}
	return errs
}

// ValidateReceivedRows validates rows that carry input, keyed by row ID.
// Blank rows are silently ignored. A nil map means every row passed.
func ValidateReceivedRows(rows []ReceivedRow) map[string]ReceivedRowErrors {
	var out map[string]ReceivedRowErrors
	for _, row := range rows {
		if !row.HasInput() {
			continue
		}
		if errs := ValidateReceivedRow(row); !errs.IsZero() {
			if out == nil {
				out = make(map[string]ReceivedRowErrors)
			}
			out[row.ID] = errs
		}
	}
	return out
}

// AnyReceivedInput reports whether at least one received row carries input.
// It decides both the receipt status (complete vs incomplete) and whether
// received-row validation runs at all.
func AnyReceivedInput(rows []ReceivedRow) bool {
	for _, row := range rows {
		if row.HasInput() {
			return true
		}
	}
	return false
}
