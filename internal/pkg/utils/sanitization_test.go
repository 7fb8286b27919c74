package utils

import (
	"healthlink-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.RegisterUser{
			Name:     "  Asha Rao  ",
			Email:    "  ASHA@EXAMPLE.COM  ",
			Password: " Secret@123 ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "asha@example.com", request.Email, "email should be lowercase and trimmed")
		assert.Equal(t, "Asha Rao", request.Name, "name should be trimmed")
		assert.Equal(t, "Secret@123", request.Password, "password should be trimmed")
	})
}

func TestSanitizeCompleteProfileRequest(t *testing.T) {
	t.Run("Gender And Arrays", func(t *testing.T) {
		request := &requests.CompleteProfile{
			Gender:     "  Female ",
			BloodGroup: " O+ ",
			Allergies:  []string{"  penicillin  ", " dust "},
			Conditions: []string{"  asthma  "},
		}

		SanitizeCompleteProfileRequest(request)

		assert.Equal(t, "female", request.Gender, "gender should be lowercase and trimmed")
		assert.Equal(t, "O+", request.BloodGroup)
		assert.Equal(t, []string{"penicillin", "dust"}, request.Allergies)
		assert.Equal(t, []string{"asthma"}, request.Conditions)
	})
}

func TestSanitizeSymptomCheckRequest(t *testing.T) {
	t.Run("Trims Fields", func(t *testing.T) {
		request := &requests.SymptomCheck{
			Symptoms: "  fever and headache  ",
			Language: " Hindi ",
		}

		SanitizeSymptomCheckRequest(request)

		assert.Equal(t, "fever and headache", request.Symptoms)
		assert.Equal(t, "Hindi", request.Language)
	})
}
