package store

type PlayRecord struct {
	ID   string
	Name string
	Type string
}
