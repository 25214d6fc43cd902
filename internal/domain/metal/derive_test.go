package metal

import (
	"math"
	"testing"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name      string
		gross     float64
		stone     float64
		melting   float64
		wantNet   float64
		wantFinal float64
	}{
		{"typical item", 10, 2, 50, 8, 4},
		{"full melting", 12.5, 0.5, 100, 12, 12},
		{"zero melting", 10, 2, 0, 8, 0},
		{"zero weights", 0, 0, 75, 0, 0},
		{"stone exceeds gross goes negative", 2, 3, 100, -1, -1},
		{"nan gross coerced to zero", math.NaN(), 1, 50, -1, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Derive(tt.gross, tt.stone, tt.melting)
			if d.NetWeight != tt.wantNet {
				t.Errorf("NetWeight = %v, want %v", d.NetWeight, tt.wantNet)
			}
			if d.FinalWeight != tt.wantFinal {
				t.Errorf("FinalWeight = %v, want %v", d.FinalWeight, tt.wantFinal)
			}
		})
	}
}

func TestDeriveBounds(t *testing.T) {
	// For 0 <= stone <= gross and melting in [0,100], net stays
	// non-negative and final stays within [0, net].
	cases := []struct{ gross, stone, melting float64 }{
		{10, 0, 0},
		{10, 10, 100},
		{3.25, 1.125, 91.6},
		{0.001, 0.001, 50},
		{1000, 999.999, 0.1},
	}
	for _, c := range cases {
		d := Derive(c.gross, c.stone, c.melting)
		if d.NetWeight < 0 {
			t.Errorf("Derive(%v, %v, %v): net %v < 0", c.gross, c.stone, c.melting, d.NetWeight)
		}
		if d.FinalWeight < 0 || d.FinalWeight > d.NetWeight {
			t.Errorf("Derive(%v, %v, %v): final %v outside [0, %v]",
				c.gross, c.stone, c.melting, d.FinalWeight, d.NetWeight)
		}
	}
}

func TestReceivedFinal(t *testing.T) {
	// Net-of-loss: what remains after the melting loss is deducted.
	if got := ReceivedFinal(20, 10, ConventionNetOfLoss); got != 18 {
		t.Errorf("net_of_loss(20, 10) = %v, want 18", got)
	}
	// Melted-yield: the opposite convention used by an earlier revision.
	if got := ReceivedFinal(20, 10, ConventionMeltedYield); got != 2 {
		t.Errorf("melted_yield(20, 10) = %v, want 2", got)
	}
	if got := ReceivedFinal(0, 50, ConventionNetOfLoss); got != 0 {
		t.Errorf("net_of_loss(0, 50) = %v, want 0", got)
	}
}

func TestReceivedConventionValid(t *testing.T) {
	if !ConventionNetOfLoss.Valid() || !ConventionMeltedYield.Valid() {
		t.Error("known conventions reported invalid")
	}
	if ReceivedConvention("half_loss").Valid() {
		t.Error("unknown convention reported valid")
	}
}

func TestRound3(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{1.23456, 1.235},
		{1.2344, 1.234},
		{-2.5678, -2.568},
		{18, 18},
		{0.1 + 0.2, 0.3},
	}
	for _, tt := range tests {
		if got := Round3(tt.in); got != tt.want {
			t.Errorf("Round3(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNum(t *testing.T) {
	if Num(math.NaN()) != 0 || Num(math.Inf(1)) != 0 || Num(math.Inf(-1)) != 0 {
		t.Error("non-finite values must coerce to 0")
	}
	if Num(-4.5) != -4.5 {
		t.Error("finite values must pass through unchanged")
	}
}
