package request

// CreateBookingRequest mirrors the wire payload for POST /bookTicket.
// No validator tags here on purpose: booking creation validates in a
// fixed order (account resolution before field checks), which the
// service owns.
type CreateBookingRequest struct {
	BusID            string            `json:"busId"`
	SelectedSeats    []string          `json:"selectedSeats"`
	PassengerDetails *PassengerDetails `json:"passengerDetails,omitempty"`
	BusDetails       *BusPayload       `json:"busDetails,omitempty"`
	JourneyDetails   *JourneyPayload   `json:"journeyDetails,omitempty"`
	TotalAmount      float64           `json:"totalAmount"`
	BookingTime      string            `json:"bookingTime,omitempty"`
	Phone            string            `json:"phone,omitempty"`
}

// PassengerDetails lets the client override the passenger name and
// phone. The email is ignored: bookings are always recorded under the
// authenticated account's email.
type PassengerDetails struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type BusPayload struct {
	BusID         string   `json:"busId,omitempty"`
	BusName       string   `json:"busName,omitempty"`
	BusType       string   `json:"busType,omitempty"`
	Duration      string   `json:"duration,omitempty"`
	DepartureTime string   `json:"departureTime,omitempty"`
	ArrivalTime   string   `json:"arrivalTime,omitempty"`
	Price         float64  `json:"price,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	TotalSeats    int      `json:"totalSeats,omitempty"`
}

type JourneyPayload struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
	Date string `json:"date,omitempty"`
}
