package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. UserID is the public stable identifier;
// ID is the storage-internal row id and never leaves the data layer.
type User struct {
	ID           int64     `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Phone        *string   `db:"phone"`
	PasswordHash string    `db:"password"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
