package models

// ArrivalRecord is the only guest state the server knows about: whether
// the guest with ID has arrived. There is no history.
type ArrivalRecord struct {
	ID      string `json:"id"`
	Arrived bool   `json:"arrived"`
}
