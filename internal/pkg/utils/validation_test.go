package utils

import (
	"healthlink-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	t.Run("Valid Register Request", func(t *testing.T) {
		request := &requests.RegisterUser{
			Name:     "Asha Rao",
			Email:    "asha@example.com",
			Password: "Secret@123",
		}

		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("Password Without Uppercase", func(t *testing.T) {
		request := &requests.RegisterUser{
			Name:     "Asha Rao",
			Email:    "asha@example.com",
			Password: "secret@123",
		}

		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Password Without Special Character", func(t *testing.T) {
		request := &requests.RegisterUser{
			Name:     "Asha Rao",
			Email:    "asha@example.com",
			Password: "Secret1234",
		}

		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Invalid Email", func(t *testing.T) {
		request := &requests.RegisterUser{
			Name:     "Asha Rao",
			Email:    "not-an-email",
			Password: "Secret@123",
		}

		assert.Error(t, ValidateStruct(request))
	})
}
