package payload

import (
	"time"

	"github.com/quizmaster/quizmaster-api/internal/model"
)

// CreateQuizRequest creates a catalog entry. Numeric fields are JSON
// numbers; a non-integer value fails decoding instead of silently
// defaulting. Omitted numeric fields take the catalog defaults.
type CreateQuizRequest struct {
	Title          string     `json:"title"          validate:"required"`
	Description    string     `json:"description"`
	Category       string     `json:"category"       validate:"required"`
	Difficulty     string     `json:"difficulty"     validate:"required,oneof=Beginner Intermediate Advanced"`
	Duration       *int       `json:"duration"       validate:"omitempty,min=1"`
	TotalQuestions *int       `json:"totalQuestions" validate:"omitempty,min=1"`
	PassingScore   *int       `json:"passingScore"   validate:"omitempty,min=0,max=100"`
	StartDate      *time.Time `json:"startDate"`
}

// UpdateQuizRequest performs a partial merge: nil fields are untouched,
// present fields overwrite, including explicit empty strings.
type UpdateQuizRequest struct {
	Title          *string    `json:"title"          validate:"omitempty,min=1"`
	Description    *string    `json:"description"`
	Category       *string    `json:"category"       validate:"omitempty,min=1"`
	Difficulty     *string    `json:"difficulty"     validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Duration       *int       `json:"duration"       validate:"omitempty,min=1"`
	TotalQuestions *int       `json:"totalQuestions" validate:"omitempty,min=1"`
	PassingScore   *int       `json:"passingScore"   validate:"omitempty,min=0,max=100"`
	StartDate      *time.Time `json:"startDate"`
	Status         *string    `json:"status"         validate:"omitempty,min=1"`
}

type QuizResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Difficulty     string    `json:"difficulty"`
	Duration       int       `json:"duration"`
	TotalQuestions int       `json:"totalQuestions"`
	PassingScore   int       `json:"passingScore"`
	StartDate      time.Time `json:"startDate"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func NewQuizResponse(quiz *model.Quiz) QuizResponse {
	return QuizResponse{
		ID:             quiz.ID.Hex(),
		Title:          quiz.Title,
		Description:    quiz.Description,
		Category:       quiz.Category,
		Difficulty:     quiz.Difficulty,
		Duration:       quiz.Duration,
		TotalQuestions: quiz.TotalQuestions,
		PassingScore:   quiz.PassingScore,
		StartDate:      quiz.StartDate,
		Status:         quiz.Status,
		CreatedAt:      quiz.CreatedAt,
		UpdatedAt:      quiz.UpdatedAt,
	}
}

func NewQuizListResponse(quizzes []*model.Quiz) []QuizResponse {
	out := make([]QuizResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		out = append(out, NewQuizResponse(quiz))
	}
	return out
}
