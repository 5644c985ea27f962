package model

const (
	EntityName = "reservation"
)

// TimeSlot lists the times of day still bookable on one calendar date.
// An entry with no times left is pruned, never persisted empty.
type TimeSlot struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

// Reservation is append-only: created once by the booking flow, never
// mutated afterwards. Confirmed stays false; confirmation happens over the
// phone, outside this system.
type Reservation struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Guests       int    `json:"guests"`
	Relationship string `json:"relationship"`
	Confirmed    bool   `json:"confirmed"`
	CreatedAt    string `json:"createdAt"`
}

// Document is the whole persisted store: the open slot list plus every
// reservation ever taken.
type Document struct {
	AvailableSlots []TimeSlot    `json:"availableSlots"`
	Reservations   []Reservation `json:"reservations"`
}
