package domain

import "errors"

var (
	// ErrUnknownPlayID is returned when a performance references a play missing from the catalog.
	ErrUnknownPlayID = errors.New("unknown play id")
	// ErrUnsupportedPlayType is returned when no calculator is registered for a play type.
	ErrUnsupportedPlayType = errors.New("unsupported play type")
	// ErrInvalidInvoice is returned when an invoice fails boundary validation.
	ErrInvalidInvoice = errors.New("invalid invoice")
)
