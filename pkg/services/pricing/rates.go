package pricing

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Rates holds every business constant used by the calculators. Amounts are in cents.
type Rates struct {
	TragedyBase        int64 `mapstructure:"tragedy_base" validate:"gte=0"`
	TragedyThreshold   int   `mapstructure:"tragedy_threshold" validate:"gte=0"`
	TragedyOverageRate int64 `mapstructure:"tragedy_overage_rate" validate:"gte=0"`

	ComedyBase          int64 `mapstructure:"comedy_base" validate:"gte=0"`
	ComedyThreshold     int   `mapstructure:"comedy_threshold" validate:"gte=0"`
	ComedyOverageFlat   int64 `mapstructure:"comedy_overage_flat" validate:"gte=0"`
	ComedyOverageRate   int64 `mapstructure:"comedy_overage_rate" validate:"gte=0"`
	ComedyPerHeadRate   int64 `mapstructure:"comedy_per_head_rate" validate:"gte=0"`
	ComedyCreditDivisor int   `mapstructure:"comedy_credit_divisor" validate:"gte=1"`

	CreditBaseThreshold int `mapstructure:"credit_base_threshold" validate:"gte=0"`
}

func DefaultRates() Rates {
	return Rates{
		TragedyBase:         40000,
		TragedyThreshold:    30,
		TragedyOverageRate:  1000,
		ComedyBase:          30000,
		ComedyThreshold:     20,
		ComedyOverageFlat:   10000,
		ComedyOverageRate:   500,
		ComedyPerHeadRate:   300,
		ComedyCreditDivisor: 5,
		CreditBaseThreshold: 30,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (r Rates) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid pricing rates: %w", err)
	}
	return nil
}

// SetDefaults registers the default rates on v under prefix (e.g. "pricing").
func SetDefaults(v *viper.Viper, prefix string) {
	d := DefaultRates()
	key := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}
	v.SetDefault(key("tragedy_base"), d.TragedyBase)
	v.SetDefault(key("tragedy_threshold"), d.TragedyThreshold)
	v.SetDefault(key("tragedy_overage_rate"), d.TragedyOverageRate)
	v.SetDefault(key("comedy_base"), d.ComedyBase)
	v.SetDefault(key("comedy_threshold"), d.ComedyThreshold)
	v.SetDefault(key("comedy_overage_flat"), d.ComedyOverageFlat)
	v.SetDefault(key("comedy_overage_rate"), d.ComedyOverageRate)
	v.SetDefault(key("comedy_per_head_rate"), d.ComedyPerHeadRate)
	v.SetDefault(key("comedy_credit_divisor"), d.ComedyCreditDivisor)
	v.SetDefault(key("credit_base_threshold"), d.CreditBaseThreshold)
}

// LoadRates reads a rates file (any format viper understands). Keys missing from
// the file keep their default value.
func LoadRates(path string) (Rates, error) {
	v := viper.New()
	SetDefaults(v, "")
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Rates{}, fmt.Errorf("failed to read rates file: %w", err)
	}

	var rates Rates
	if err := v.Unmarshal(&rates); err != nil {
		return Rates{}, fmt.Errorf("failed to parse rates file: %w", err)
	}
	if err := rates.Validate(); err != nil {
		return Rates{}, err
	}
	return rates, nil
}
