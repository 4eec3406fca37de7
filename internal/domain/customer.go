package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer is a salon client. Phone is the natural dedup key.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Email     *string
	Address   *string
	BirthDate *time.Time
	Notes     *string

	TotalPurchases int
	TotalSpent     float64
	LastPurchaseAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizePhone keeps digits and a leading plus so "(11) 99999-0000" and
// "11999990000" resolve to the same customer.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	var b strings.Builder
	for i, r := range phone {
		if isASCIIDigit(r) || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PhoneDigits counts the digits of a phone number
func PhoneDigits(phone string) int {
	n := 0
	for _, r := range phone {
		if isASCIIDigit(r) {
			n++
		}
	}
	return n
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
