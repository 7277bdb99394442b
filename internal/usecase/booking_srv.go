package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/request"
	"bus-booking/internal/dto/response"
	"bus-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	BookTicket(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetBookingHistory(ctx context.Context, userID string) (*response.BookingHistoryResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// BookTicket runs the creation pipeline. The check order is part of the
// contract: the account is resolved before any field validation, so a
// valid session whose user row vanished answers 404, not 400.
func (s *bookingService) BookTicket(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	// 1. Resolve the authenticated account
	user, err := s.repo.User.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to resolve booking user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user account not found: %w", ErrNotFound)
	}

	// 2. Derive the passenger snapshot. The email is always the
	// account's email, whatever the client sent.
	userDetails := entity.UserDetails{
		Name:  user.Name,
		Email: user.Email,
	}
	if req.PassengerDetails != nil && req.PassengerDetails.Name != "" {
		userDetails.Name = req.PassengerDetails.Name
	}
	if req.PassengerDetails != nil && req.PassengerDetails.Phone != "" {
		userDetails.Phone = req.PassengerDetails.Phone
	} else if user.Phone != nil && *user.Phone != "" {
		userDetails.Phone = *user.Phone
	} else {
		userDetails.Phone = req.Phone
	}

	// 3. Seats
	if len(req.SelectedSeats) == 0 {
		return nil, fmt.Errorf("at least one seat must be selected: %w", ErrValidation)
	}

	// 4. A phone number must have been resolvable
	if userDetails.Phone == "" {
		return nil, fmt.Errorf("a contact phone number is required: %w", ErrValidation)
	}

	// 5. Bus details, with defaults for the optional sub-fields
	if req.BusDetails == nil || req.BusDetails.BusName == "" || req.BusDetails.BusType == "" {
		return nil, fmt.Errorf("busDetails with busName and busType are required: %w", ErrValidation)
	}
	busDetails := s.deriveBusDetails(req)

	// 6. Journey details
	if req.JourneyDetails == nil || req.JourneyDetails.From == "" ||
		req.JourneyDetails.To == "" || req.JourneyDetails.Date == "" {
		return nil, fmt.Errorf("journeyDetails with from, to and date are required: %w", ErrValidation)
	}

	// 7. Amount
	if req.TotalAmount <= 0 {
		return nil, fmt.Errorf("totalAmount must be a positive number: %w", ErrValidation)
	}

	// 8. Phone format: 10 to 15 digits once separators are stripped
	if !utils.ValidPhone(userDetails.Phone) {
		return nil, fmt.Errorf("phone number must contain 10 to 15 digits: %w", ErrValidation)
	}

	// 9. Persist the booking. No seat-availability check: overlapping
	// seat selections on the same bus are all accepted.
	booking := &entity.Booking{
		BookingID:     utils.GenerateBookingID(),
		SelectedSeats: req.SelectedSeats,
		UserDetails:   userDetails,
		BusDetails:    busDetails,
		JourneyDetails: entity.JourneyDetails{
			From: req.JourneyDetails.From,
			To:   req.JourneyDetails.To,
			Date: req.JourneyDetails.Date,
		},
		TotalAmount: req.TotalAmount,
		BookingTime: resolveBookingTime(req.BookingTime),
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.BookingID),
		zap.String("user_id", userID.String()),
		zap.Int("seat_count", len(booking.SelectedSeats)),
		zap.Float64("total_amount", booking.TotalAmount),
	)

	return &response.BookingCreatedResponse{BookingID: booking.BookingID}, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	if bookingID == "" {
		return nil, fmt.Errorf("booking id is required: %w", ErrValidation)
	}

	booking, err := s.repo.Booking.FindByBookingID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to get booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found: %w", bookingID, ErrNotFound)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// GetBookingHistory returns the user's bookings, newest first. A user
// with no bookings gets an empty list, not an error.
func (s *bookingService) GetBookingHistory(ctx context.Context, userID string) (*response.BookingHistoryResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required: %w", ErrValidation)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %s: %w", userID, ErrValidation)
	}

	user, err := s.repo.User.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to resolve history user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found: %w", userID, ErrNotFound)
	}

	bookings, err := s.repo.Booking.FindByOwnerEmail(ctx, user.Email)
	if err != nil {
		s.log.Error("Failed to get booking history", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get booking history: %w", err)
	}

	// The repository orders by booking_time already; re-sort so the
	// contract holds for any store implementation.
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].BookingTime.After(bookings[j].BookingTime)
	})

	return &response.BookingHistoryResponse{
		User:     response.UserToResponse(user),
		Bookings: response.BookingsToResponse(bookings),
	}, nil
}

// deriveBusDetails fills the optional bus sub-fields the client left
// out. Callers have already checked busName and busType.
func (s *bookingService) deriveBusDetails(req *request.CreateBookingRequest) entity.BusDetails {
	bd := entity.BusDetails{
		BusID:         req.BusDetails.BusID,
		BusName:       req.BusDetails.BusName,
		BusType:       req.BusDetails.BusType,
		Duration:      req.BusDetails.Duration,
		DepartureTime: req.BusDetails.DepartureTime,
		ArrivalTime:   req.BusDetails.ArrivalTime,
		Price:         req.BusDetails.Price,
		Rating:        req.BusDetails.Rating,
		Amenities:     req.BusDetails.Amenities,
		TotalSeats:    req.BusDetails.TotalSeats,
	}

	if bd.BusID == "" {
		bd.BusID = req.BusID
	}
	if bd.BusID == "" {
		bd.BusID = "unknown"
	}
	if bd.Duration == "" {
		if bd.DepartureTime != "" && bd.ArrivalTime != "" {
			bd.Duration = "Calculated"
		} else {
			bd.Duration = "N/A"
		}
	}
	if bd.Price == 0 {
		bd.Price = math.Round(req.TotalAmount / float64(len(req.SelectedSeats)))
	}
	if bd.Rating == 0 {
		bd.Rating = 4.0
	}
	if len(bd.Amenities) == 0 {
		bd.Amenities = []string{"Basic"}
	}
	if bd.TotalSeats == 0 {
		bd.TotalSeats = 40
	}

	return bd
}

// resolveBookingTime honors a parseable client timestamp, else now.
func resolveBookingTime(raw string) time.Time {
	if raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t
		}
	}
	return time.Now()
}
