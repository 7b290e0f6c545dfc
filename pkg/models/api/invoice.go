package api

type Performance struct {
	PlayID   string `json:"playID" validate:"required"`
	Audience int    `json:"audience" validate:"gte=0"`
}

type Invoice struct {
	Customer     string        `json:"customer" validate:"required"`
	Performances []Performance `json:"performances" validate:"dive"`
}

type Play struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	Type string `json:"type" yaml:"type" validate:"required"`
}

// Plays is a play catalog document keyed by play id.
type Plays map[string]Play

type StatementRequest struct {
	Invoice Invoice `json:"invoice"`
	Plays   Plays   `json:"plays,omitempty"`
}
