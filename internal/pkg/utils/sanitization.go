package utils

import (
	"healthlink-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
	input.City = strings.TrimSpace(input.City)
}

func SanitizeCompleteProfileRequest(input *requests.CompleteProfile) {
	input.Gender = strings.TrimSpace(strings.ToLower(input.Gender))
	input.BloodGroup = strings.TrimSpace(input.BloodGroup)
	input.Allergies = cleanWhiteSpaceFromEachStringOfAnArray(input.Allergies)
	input.Conditions = cleanWhiteSpaceFromEachStringOfAnArray(input.Conditions)
}

func SanitizeCreateBookingRequest(input *requests.CreateBooking) {
	input.ClinicName = strings.TrimSpace(input.ClinicName)
	input.Symptoms = strings.TrimSpace(input.Symptoms)
}

func SanitizeSymptomCheckRequest(input *requests.SymptomCheck) {
	input.Symptoms = strings.TrimSpace(input.Symptoms)
	input.Language = strings.TrimSpace(input.Language)
}
