package usecase

import (
	"context"
	"strings"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. They honor the same conventions as the
// pgx implementations: (nil, nil) when a row is absent.

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	user.ID = int64(len(f.users) + 1)
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.UserID == userID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

type fakeBookingRepo struct {
	bookings []*entity.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	booking.ID = int64(len(f.bookings) + 1)
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingRepo) FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	for _, b := range f.bookings {
		if b.BookingID == bookingID {
			return b, nil
		}
	}
	return nil, nil
}

// FindByOwnerEmail returns matches in insertion order; the service owns
// the descending-time ordering contract.
func (f *fakeBookingRepo) FindByOwnerEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.UserDetails.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func newFakeRepos() (*repository.Repository, *fakeUserRepo, *fakeBookingRepo) {
	users := &fakeUserRepo{}
	bookings := &fakeBookingRepo{}
	return &repository.Repository{User: users, Booking: bookings}, users, bookings
}
