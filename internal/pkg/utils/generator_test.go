package utils

import (
	"healthlink-service/internal/pkg/constvars"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBookingToken(t *testing.T) {
	t.Run("Regular Series Format", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			token := GenerateBookingToken(constvars.BookingSeriesRegular)

			parts := strings.SplitN(token, "-", 2)
			assert.Len(t, parts, 2)
			assert.Equal(t, "A", parts[0])

			number, err := strconv.Atoi(parts[1])
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, number, 1)
			assert.LessOrEqual(t, number, constvars.BookingTokenNumberMax)
		}
	})

	t.Run("Emergency Series Prefix", func(t *testing.T) {
		token := GenerateBookingToken(constvars.BookingSeriesEmergency)
		assert.True(t, strings.HasPrefix(token, "E-"))
	})
}

func TestRandomIntInclusive(t *testing.T) {
	t.Run("Stays Within Bounds", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			value := RandomIntInclusive(5, 34)
			assert.GreaterOrEqual(t, value, 5)
			assert.LessOrEqual(t, value, 34)
		}
	})

	t.Run("Degenerate Range", func(t *testing.T) {
		assert.Equal(t, 7, RandomIntInclusive(7, 7))
	})
}

func TestGenerateRequestID(t *testing.T) {
	t.Run("Carries Service Prefix", func(t *testing.T) {
		requestID := GenerateRequestID()
		assert.True(t, strings.HasPrefix(requestID, constvars.REQUEST_ID_PREFIX))
		assert.Greater(t, len(requestID), len(constvars.REQUEST_ID_PREFIX))
	})
}
