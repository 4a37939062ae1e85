package domain

// Item is the sole persisted entity: one row of the inventory table.
// The id is assigned by the store at insert time and never changes.
type Item struct {
	ID   int64
	Name string
	Qty  int64
}
