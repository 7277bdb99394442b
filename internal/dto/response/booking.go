package response

import (
	"time"

	"bus-booking/internal/data/entity"
)

type BookingCreatedResponse struct {
	BookingID string `json:"bookingId"`
}

type BookingResponse struct {
	BookingID      string                `json:"bookingId"`
	SelectedSeats  []string              `json:"selectedSeats"`
	UserDetails    entity.UserDetails    `json:"userDetails"`
	BusDetails     entity.BusDetails     `json:"busDetails"`
	JourneyDetails entity.JourneyDetails `json:"journeyDetails"`
	TotalAmount    float64               `json:"totalAmount"`
	BookingTime    time.Time             `json:"bookingTime"`
}

type BookingHistoryResponse struct {
	User     UserResponse      `json:"user"`
	Bookings []BookingResponse `json:"bookings"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		BookingID:      booking.BookingID,
		SelectedSeats:  booking.SelectedSeats,
		UserDetails:    booking.UserDetails,
		BusDetails:     booking.BusDetails,
		JourneyDetails: booking.JourneyDetails,
		TotalAmount:    booking.TotalAmount,
		BookingTime:    booking.BookingTime,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = BookingToResponse(b)
	}
	return out
}
