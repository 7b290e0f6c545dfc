package domain

import "fmt"

// PlayType is the pricing category of a play.
type PlayType string

const (
	PlayTypeTragedy PlayType = "tragedy"
	PlayTypeComedy  PlayType = "comedy"
)

func (t PlayType) String() string {
	return string(t)
}

type Play struct {
	ID   string
	Name string
	Type PlayType
}

func (p Play) String() string {
	return fmt.Sprintf("%s:%s", p.Type, p.ID)
}

type Performance struct {
	PlayID   string
	Audience int
}

// Invoice is a customer's bill. Performances keep the order they were billed in.
type Invoice struct {
	Customer     string
	Performances []Performance
}

// Charge is what a single performance costs and earns.
type Charge struct {
	Amount        int64 // cents
	VolumeCredits int64
}
