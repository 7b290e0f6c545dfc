package pricing

import "github.com/de-tools/playbill/pkg/models/domain"

// Calculator prices one performance of a given play type.
type Calculator interface {
	PlayType() domain.PlayType
	Amount(audience int) int64
	VolumeCredits(audience int) int64
}

// CalculatorFactory builds a Calculator bound to a set of rates.
type CalculatorFactory func(rates Rates) Calculator

type tragedyCalculator struct {
	rates Rates
}

func NewTragedyCalculator(rates Rates) Calculator {
	return &tragedyCalculator{rates: rates}
}

func (c *tragedyCalculator) PlayType() domain.PlayType {
	return domain.PlayTypeTragedy
}

func (c *tragedyCalculator) Amount(audience int) int64 {
	amount := c.rates.TragedyBase
	if audience > c.rates.TragedyThreshold {
		amount += c.rates.TragedyOverageRate * int64(audience-c.rates.TragedyThreshold)
	}
	return amount
}

func (c *tragedyCalculator) VolumeCredits(audience int) int64 {
	return baseVolumeCredits(c.rates, audience)
}

type comedyCalculator struct {
	rates Rates
}

func NewComedyCalculator(rates Rates) Calculator {
	return &comedyCalculator{rates: rates}
}

func (c *comedyCalculator) PlayType() domain.PlayType {
	return domain.PlayTypeComedy
}

func (c *comedyCalculator) Amount(audience int) int64 {
	amount := c.rates.ComedyBase
	if audience > c.rates.ComedyThreshold {
		amount += c.rates.ComedyOverageFlat +
			c.rates.ComedyOverageRate*int64(audience-c.rates.ComedyThreshold)
	}
	amount += c.rates.ComedyPerHeadRate * int64(audience)
	return amount
}

func (c *comedyCalculator) VolumeCredits(audience int) int64 {
	credits := baseVolumeCredits(c.rates, audience)
	if c.rates.ComedyCreditDivisor > 0 {
		credits += int64(audience / c.rates.ComedyCreditDivisor)
	}
	return credits
}

// baseVolumeCredits is the credit rule shared by every play type.
func baseVolumeCredits(rates Rates, audience int) int64 {
	return int64(max(audience-rates.CreditBaseThreshold, 0))
}

// Charge computes both values of c for one performance.
func Charge(c Calculator, audience int) domain.Charge {
	return domain.Charge{
		Amount:        c.Amount(audience),
		VolumeCredits: c.VolumeCredits(audience),
	}
}
