package repository

import (
	"context"
	"fmt"

	"bus-booking/internal/data/entity"
	"bus-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error)
	FindByOwnerEmail(ctx context.Context, email string) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  *database.Client
	log *zap.Logger
}

func NewBookingRepository(db *database.Client, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// Create inserts one immutable booking document. No update path exists.
func (br *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (booking_id, selected_seats, user_details, bus_details,
		                      journey_details, total_amount, booking_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := br.db.WithConn(ctx, func(ctx context.Context, q database.Querier) error {
		return q.QueryRow(ctx, query,
			booking.BookingID,
			booking.SelectedSeats,
			booking.UserDetails,
			booking.BusDetails,
			booking.JourneyDetails,
			booking.TotalAmount,
			booking.BookingTime,
			booking.CreatedAt,
		).Scan(&booking.ID)
	})

	if err != nil {
		br.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingID, err)
	}

	return nil
}

func (br *bookingRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	query := `
		SELECT id, booking_id, selected_seats, user_details, bus_details,
		       journey_details, total_amount, booking_time, created_at
		FROM bookings
		WHERE booking_id = $1
	`

	var booking entity.Booking
	var found bool

	err := br.db.WithConn(ctx, func(ctx context.Context, q database.Querier) error {
		err := q.QueryRow(ctx, query, bookingID).Scan(
			&booking.ID,
			&booking.BookingID,
			&booking.SelectedSeats,
			&booking.UserDetails,
			&booking.BusDetails,
			&booking.JourneyDetails,
			&booking.TotalAmount,
			&booking.BookingTime,
			&booking.CreatedAt,
		)
		if err == pgx.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})

	if err != nil {
		br.log.Error("Failed to find booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if !found {
		return nil, nil
	}

	return &booking, nil
}

// FindByOwnerEmail returns the owner's bookings, newest first. Ownership
// is by the snapshot email taken at booking time.
func (br *bookingRepository) FindByOwnerEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	query := `
		SELECT id, booking_id, selected_seats, user_details, bus_details,
		       journey_details, total_amount, booking_time, created_at
		FROM bookings
		WHERE user_details->>'email' = $1
		ORDER BY booking_time DESC
	`

	var bookings []*entity.Booking

	err := br.db.WithConn(ctx, func(ctx context.Context, q database.Querier) error {
		rows, err := q.Query(ctx, query, email)
		if err != nil {
			return err
		}
		defer rows.Close()

		bookings = bookings[:0]
		for rows.Next() {
			var booking entity.Booking
			err := rows.Scan(
				&booking.ID,
				&booking.BookingID,
				&booking.SelectedSeats,
				&booking.UserDetails,
				&booking.BusDetails,
				&booking.JourneyDetails,
				&booking.TotalAmount,
				&booking.BookingTime,
				&booking.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("scan booking row: %w", err)
			}
			bookings = append(bookings, &booking)
		}

		return rows.Err()
	})

	if err != nil {
		br.log.Error("Failed to find bookings by owner",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find bookings for %s: %w", email, err)
	}

	return bookings, nil
}
