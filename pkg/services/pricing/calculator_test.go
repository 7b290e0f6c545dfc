package pricing

import (
	"testing"

	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestTragedyCalculator_Amount(t *testing.T) {
	rates := DefaultRates()
	calc := NewTragedyCalculator(rates)

	for audience := 0; audience <= rates.TragedyThreshold; audience++ {
		assert.Equal(t, rates.TragedyBase, calc.Amount(audience), "audience %d", audience)
	}
	for audience := rates.TragedyThreshold + 1; audience <= 200; audience++ {
		want := rates.TragedyBase + rates.TragedyOverageRate*int64(audience-rates.TragedyThreshold)
		assert.Equal(t, want, calc.Amount(audience), "audience %d", audience)
	}
}

func TestComedyCalculator_Amount(t *testing.T) {
	rates := DefaultRates()
	calc := NewComedyCalculator(rates)

	for audience := 0; audience <= rates.ComedyThreshold; audience++ {
		want := rates.ComedyBase + rates.ComedyPerHeadRate*int64(audience)
		assert.Equal(t, want, calc.Amount(audience), "audience %d", audience)
	}
	for audience := rates.ComedyThreshold + 1; audience <= 200; audience++ {
		want := rates.ComedyBase +
			rates.ComedyOverageFlat +
			rates.ComedyOverageRate*int64(audience-rates.ComedyThreshold) +
			rates.ComedyPerHeadRate*int64(audience)
		assert.Equal(t, want, calc.Amount(audience), "audience %d", audience)
	}
}

func TestCalculators_KnownValues(t *testing.T) {
	tests := []struct {
		name        string
		calc        Calculator
		audience    int
		wantAmount  int64
		wantCredits int64
	}{
		{name: "tragedy over threshold", calc: NewTragedyCalculator(DefaultRates()), audience: 55, wantAmount: 65000, wantCredits: 25},
		{name: "tragedy at threshold", calc: NewTragedyCalculator(DefaultRates()), audience: 30, wantAmount: 40000, wantCredits: 0},
		{name: "tragedy empty house", calc: NewTragedyCalculator(DefaultRates()), audience: 0, wantAmount: 40000, wantCredits: 0},
		{name: "comedy over threshold", calc: NewComedyCalculator(DefaultRates()), audience: 35, wantAmount: 48000, wantCredits: 12},
		{name: "comedy under threshold", calc: NewComedyCalculator(DefaultRates()), audience: 15, wantAmount: 34500, wantCredits: 3},
		{name: "comedy at threshold", calc: NewComedyCalculator(DefaultRates()), audience: 20, wantAmount: 36000, wantCredits: 4},
		{name: "comedy empty house", calc: NewComedyCalculator(DefaultRates()), audience: 0, wantAmount: 30000, wantCredits: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			charge := Charge(tc.calc, tc.audience)
			assert.Equal(t, tc.wantAmount, charge.Amount)
			assert.Equal(t, tc.wantCredits, charge.VolumeCredits)
		})
	}
}

func TestCalculators_VolumeCreditsAreMonotonic(t *testing.T) {
	rates := DefaultRates()
	for _, calc := range []Calculator{NewTragedyCalculator(rates), NewComedyCalculator(rates)} {
		prev := calc.VolumeCredits(0)
		assert.GreaterOrEqual(t, prev, int64(0))
		for audience := 1; audience <= 500; audience++ {
			credits := calc.VolumeCredits(audience)
			if credits < prev {
				t.Fatalf("%s credits decreased at audience %d: %d < %d", calc.PlayType(), audience, credits, prev)
			}
			prev = credits
		}
	}
}

func TestCalculators_UseInjectedRates(t *testing.T) {
	// Given
	rates := DefaultRates()
	rates.TragedyBase = 1
	rates.ComedyCreditDivisor = 10

	// When
	tragedy := NewTragedyCalculator(rates)
	comedy := NewComedyCalculator(rates)

	// Then
	assert.Equal(t, int64(1), tragedy.Amount(10))
	assert.Equal(t, int64(3), comedy.VolumeCredits(30))
	assert.Equal(t, domain.PlayTypeTragedy, tragedy.PlayType())
	assert.Equal(t, domain.PlayTypeComedy, comedy.PlayType())
}
