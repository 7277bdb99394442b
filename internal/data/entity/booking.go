package entity

import (
	"time"
)

// UserDetails is the passenger snapshot taken at booking time. Email is
// always the authenticated account's email; later profile changes do not
// rewrite history.
type UserDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type BusDetails struct {
	BusID         string   `json:"busId"`
	BusName       string   `json:"busName"`
	BusType       string   `json:"busType"`
	Duration      string   `json:"duration"`
	DepartureTime string   `json:"departureTime"`
	ArrivalTime   string   `json:"arrivalTime"`
	Price         float64  `json:"price"`
	Rating        float64  `json:"rating"`
	Amenities     []string `json:"amenities"`
	TotalSeats    int      `json:"totalSeats"`
}

type JourneyDetails struct {
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date"`
}

// Booking is an immutable ledger entry. BookingID is the public unique
// reference; ID is the storage-internal row id. The nested documents map
// to jsonb columns.
type Booking struct {
	ID             int64          `db:"id"`
	BookingID      string         `db:"booking_id"`
	SelectedSeats  []string       `db:"selected_seats"`
	UserDetails    UserDetails    `db:"user_details"`
	BusDetails     BusDetails     `db:"bus_details"`
	JourneyDetails JourneyDetails `db:"journey_details"`
	TotalAmount    float64        `db:"total_amount"`
	BookingTime    time.Time      `db:"booking_time"`
	CreatedAt      time.Time      `db:"created_at"`
}
