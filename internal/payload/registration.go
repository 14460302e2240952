package payload

import (
	"time"

	"github.com/quizmaster/quizmaster-api/internal/model"
)

// CreateRegistrationRequest registers a person for a quiz. The required
// tag on TermsAccepted rejects false, so terms must be accepted.
type CreateRegistrationRequest struct {
	FirstName     string `json:"firstName"     validate:"required,person_name"`
	LastName      string `json:"lastName"      validate:"required,person_name"`
	Email         string `json:"email"         validate:"required,loose_email"`
	Mobile        string `json:"mobile"        validate:"required,mobile_in"`
	DateOfBirth   string `json:"dateOfBirth"   validate:"omitempty,dob"`
	College       string `json:"college"`
	Course        string `json:"course"`
	Year          string `json:"year"`
	QuizID        string `json:"quizId"        validate:"required"`
	TermsAccepted bool   `json:"termsAccepted" validate:"required"`
}

type RegistrationResponse struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	DateOfBirth  string    `json:"dateOfBirth,omitempty"`
	College      string    `json:"college,omitempty"`
	Course       string    `json:"course,omitempty"`
	Year         string    `json:"year,omitempty"`
	QuizID       string    `json:"quizId"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registeredAt"`
}

func NewRegistrationResponse(registration *model.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:           registration.ID.Hex(),
		FirstName:    registration.FirstName,
		LastName:     registration.LastName,
		Email:        registration.Email,
		Mobile:       registration.Mobile,
		DateOfBirth:  registration.DateOfBirth,
		College:      registration.College,
		Course:       registration.Course,
		Year:         registration.Year,
		QuizID:       registration.QuizID,
		Status:       registration.Status,
		RegisteredAt: registration.RegisteredAt,
	}
}

func NewRegistrationListResponse(registrations []*model.Registration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(registrations))
	for _, registration := range registrations {
		out = append(out, NewRegistrationResponse(registration))
	}
	return out
}
