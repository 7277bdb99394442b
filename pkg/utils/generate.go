package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

func GenerateSessionToken() string {
	return uuid.New().String()
}

// ==================== BOOKING ID ====================

// GenerateBookingID creates a unique booking reference.
// Format: BUS-YYYYMMDD-XXXXXXXX where the tail is a uuid fragment,
// so uniqueness rides on the generator rather than on retries.
func GenerateBookingID() string {
	datePart := time.Now().Format("20060102")
	randomPart := strings.ToUpper(uuid.New().String()[:8])

	return fmt.Sprintf("BUS-%s-%s", datePart, randomPart)
}
