package utils

import (
	"crypto/rand"
	"fmt"
	"healthlink-service/internal/pkg/constvars"
	"math/big"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// RandomIntInclusive returns a uniform random integer in [min, max].
func RandomIntInclusive(min, max int) int {
	if max <= min {
		return min
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min+1)))
	if err != nil {
		return min
	}
	return min + int(n.Int64())
}

func GenerateBookingToken(series string) string {
	return fmt.Sprintf("%s-%d", series, RandomIntInclusive(1, constvars.BookingTokenNumberMax))
}
