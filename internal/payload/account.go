package payload

import (
	"time"

	"github.com/quizmaster/quizmaster-api/internal/model"
)

type RegisterStudentRequest struct {
	FirstName   string `json:"firstName"   validate:"required,person_name"`
	LastName    string `json:"lastName"    validate:"required,person_name"`
	Email       string `json:"email"       validate:"required,loose_email"`
	Password    string `json:"password"    validate:"required,student_password"`
	Mobile      string `json:"mobile"      validate:"required,mobile_in"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,dob"`
	College     string `json:"college"`
	Course      string `json:"course"`
	Year        string `json:"year"`
}

type RegisterAdminRequest struct {
	Name       string `json:"name"       validate:"required,person_name"`
	Email      string `json:"email"      validate:"required,loose_email"`
	Password   string `json:"password"   validate:"required,admin_password"`
	Department string `json:"department"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,loose_email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required"`
}

type CheckEmailRequest struct {
	Email string `json:"email" validate:"required,loose_email"`
}

type CheckEmailResponse struct {
	Exists bool `json:"exists"`
}

// StudentResponse is the public view of a student account. The password
// hash never leaves the service.
type StudentResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Mobile      string    `json:"mobile"`
	DateOfBirth string    `json:"dateOfBirth,omitempty"`
	College     string    `json:"college,omitempty"`
	Course      string    `json:"course,omitempty"`
	Year        string    `json:"year,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AdminResponse is the public view of an admin account.
type AdminResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department,omitempty"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewStudentResponse(student *model.Student) StudentResponse {
	return StudentResponse{
		ID:          student.ID.Hex(),
		FirstName:   student.FirstName,
		LastName:    student.LastName,
		Email:       student.Email,
		Mobile:      student.Mobile,
		DateOfBirth: student.DateOfBirth,
		College:     student.College,
		Course:      student.Course,
		Year:        student.Year,
		Role:        student.Role,
		CreatedAt:   student.CreatedAt,
	}
}

func NewAdminResponse(admin *model.Admin) AdminResponse {
	return AdminResponse{
		ID:         admin.ID.Hex(),
		Name:       admin.Name,
		Email:      admin.Email,
		Department: admin.Department,
		Role:       admin.Role,
		Status:     admin.Status,
		CreatedAt:  admin.CreatedAt,
	}
}
