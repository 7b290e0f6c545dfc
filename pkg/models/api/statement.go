package api

type PerformanceRow struct {
	Play          string `json:"play"`
	Type          string `json:"type"`
	Audience      int    `json:"audience"`
	AmountCents   int64  `json:"amount_cents"`
	Amount        string `json:"amount"`
	VolumeCredits int64  `json:"volume_credits"`
}

type Statement struct {
	Customer           string           `json:"customer"`
	Performances       []PerformanceRow `json:"performances"`
	TotalAmountCents   int64            `json:"total_amount_cents"`
	TotalAmount        string           `json:"total_amount"`
	TotalVolumeCredits int64            `json:"total_volume_credits"`
	Currency           string           `json:"currency,omitempty"`
}

type PlayTypes struct {
	PlayTypes []string `json:"play_types"`
}

type Formats struct {
	Formats []string `json:"formats"`
}
