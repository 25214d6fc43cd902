// Package metal holds the weight arithmetic and row validation rules for
// goldsmith receipts. Everything here is pure: no storage, no transport.
package metal

import "math"

// ReceivedConvention selects how a received item's final weight is derived
// from the raw gold quantity and melting percentage. The two conventions
// record opposite business intents (melted-out loss vs melted-in yield),
// so the choice belongs to the shop owner, not the code.
type ReceivedConvention string

const (
	// ConventionNetOfLoss records what remains after melting loss:
	// final = gold - gold*melting/100.
	ConventionNetOfLoss ReceivedConvention = "net_of_loss"
	// ConventionMeltedYield records the melted-in yield:
	// final = gold*melting/100.
	ConventionMeltedYield ReceivedConvention = "melted_yield"
)

// Valid reports whether the convention is one of the two known values.
func (c ReceivedConvention) Valid() bool {
	return c == ConventionNetOfLoss || c == ConventionMeltedYield
}

// Derived holds the weights computed from a given item's raw fields.
type Derived struct {
	NetWeight   float64
	FinalWeight float64
}

// Derive computes net and final weight for a given item.
// net = gross - stone, final = net * melting / 100. No clamping is applied;
// a stone weight above gross produces a negative result, which validation
// is expected to reject before this value is ever persisted.
func Derive(grossWeight, stoneWeight, meltingTouch float64) Derived {
	net := Num(grossWeight) - Num(stoneWeight)
	return Derived{
		NetWeight:   net,
		FinalWeight: net * Num(meltingTouch) / 100,
	}
}

// ReceivedFinal computes the final weight of a received item under the
// configured convention.
func ReceivedFinal(receivedGold, melting float64, convention ReceivedConvention) float64 {
	gold := Num(receivedGold)
	loss := gold * Num(melting) / 100
	if convention == ConventionMeltedYield {
		return loss
	}
	return gold - loss
}

// Num coerces NaN and infinities to 0 so that a malformed field never
// poisons a running total.
func Num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Round3 rounds to three decimal places. It is applied only at submission
// and display boundaries, never during accumulation.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
