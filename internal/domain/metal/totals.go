package metal

import "strings"

// BalanceTag marks the synthetic row that carries a client's prior balance
// into a new receipt. Rows tagged with it bypass validation and may hold
// signed weights.
const BalanceTag = "BALANCE"

// GivenRow is one line of metal handed over to the shop, as entered on the
// form. Derived fields are recomputed from the raw ones; callers should not
// trust any cached values.
type GivenRow struct {
	ID           string
	ItemName     string
	Tag          string
	GrossWeight  float64
	StoneWeight  float64
	MeltingTouch float64
	StoneAmount  float64
}

// IsBalanceRow reports whether the row is the synthetic balance carry row.
func (r GivenRow) IsBalanceRow() bool {
	return strings.EqualFold(strings.TrimSpace(r.Tag), BalanceTag)
}

// Derive returns the row's computed net and final weight.
func (r GivenRow) Derive() Derived {
	return Derive(r.GrossWeight, r.StoneWeight, r.MeltingTouch)
}

// ReceivedRow is one line of metal returned by the client.
type ReceivedRow struct {
	ID           string
	ReceivedGold float64
	Melting      float64
}

// HasInput reports whether the row carries any user input. Rows left
// entirely blank are ignored for both validation and totals.
func (r ReceivedRow) HasInput() bool {
	return r.ReceivedGold != 0 || r.Melting != 0
}

// GivenTotals aggregates a given-item list. Recomputed from scratch on
// every call; there is no incremental maintenance to get out of sync.
type GivenTotals struct {
	GrossWeight float64
	StoneWeight float64
	NetWeight   float64
	FinalWeight float64
	StoneAmount float64
}

// SumGiven reduces a given-item list to its totals.
func SumGiven(rows []GivenRow) GivenTotals {
	var t GivenTotals
	for _, r := range rows {
		d := r.Derive()
		t.GrossWeight += Num(r.GrossWeight)
		t.StoneWeight += Num(r.StoneWeight)
		t.NetWeight += d.NetWeight
		t.FinalWeight += d.FinalWeight
		t.StoneAmount += Num(r.StoneAmount)
	}
	return t
}

// ReceivedTotals aggregates a received-item list.
type ReceivedTotals struct {
	ReceivedGold float64
	FinalWeight  float64
}

// SumReceived reduces a received-item list to its totals under the given
// convention. Blank rows contribute nothing.
func SumReceived(rows []ReceivedRow, convention ReceivedConvention) ReceivedTotals {
	var t ReceivedTotals
	for _, r := range rows {
		if !r.HasInput() {
			continue
		}
		t.ReceivedGold += Num(r.ReceivedGold)
		t.FinalWeight += ReceivedFinal(r.ReceivedGold, r.Melting, convention)
	}
	return t
}

// Balance is the receipt's own balance: what was given minus what came back.
func Balance(given GivenTotals, received ReceivedTotals) float64 {
	return given.FinalWeight - received.FinalWeight
}

// CarryForward folds the receipt balance into the client's prior balance.
func CarryForward(prior, receiptBalance float64) float64 {
	return Num(prior) + receiptBalance
}

// BalanceRow builds the synthetic given row that carries a non-zero prior
// balance onto the form. Melting is fixed at 100 so gross, net and final
// all equal the carried value, which may be negative.
func BalanceRow(id string, prior float64) GivenRow {
	return GivenRow{
		ID:           id,
		ItemName:     "Previous balance",
		Tag:          BalanceTag,
		GrossWeight:  prior,
		StoneWeight:  0,
		MeltingTouch: 100,
	}
}
