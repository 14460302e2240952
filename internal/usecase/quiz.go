package usecase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/quizmaster/quizmaster-api/internal/model"
	"github.com/quizmaster/quizmaster-api/internal/repository"
	"github.com/quizmaster/quizmaster-api/internal/security"
)

// Catalog defaults applied when a create request omits the fields.
const (
	defaultQuizDuration       = 30
	defaultQuizTotalQuestions = 10
	defaultQuizPassingScore   = 60
)

// QuizUsecase defines the business logic for the quiz catalog.
type QuizUsecase interface {
	List(ctx context.Context, onlyActive bool) ([]*model.Quiz, error)
	Get(ctx context.Context, id string) (*model.Quiz, error)
	Create(ctx context.Context, params CreateQuizParams) (*model.Quiz, error)
	Update(ctx context.Context, id string, params repository.UpdateQuizParams) (*model.Quiz, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*DashboardStats, error)
	Seed(ctx context.Context) (bool, error)
}

// CreateQuizParams defines the parameters for creating a quiz. Nil
// numeric fields take the catalog defaults.
type CreateQuizParams struct {
	Title          string
	Description    string
	Category       string
	Difficulty     string
	Duration       *int
	TotalQuestions *int
	PassingScore   *int
	StartDate      *time.Time
}

// DashboardStats summarizes the catalog and registration activity for
// the admin dashboard.
type DashboardStats struct {
	TotalQuizzes        int64                 `json:"totalQuizzes"`
	TotalRegistrations  int64                 `json:"totalRegistrations"`
	ActiveQuizzes       int64                 `json:"activeQuizzes"`
	RecentRegistrations []*model.Registration `json:"recentRegistrations"`
}

var ErrQuizNotFound = errors.New("quiz not found")

type quizUsecase struct {
	quizRepo         repository.QuizRepository
	registrationRepo repository.RegistrationRepository
	adminRepo        repository.AdminRepository
	now              func() time.Time
}

// NewQuizUsecase creates a new instance of QuizUsecase.
func NewQuizUsecase(
	quizRepo repository.QuizRepository,
	registrationRepo repository.RegistrationRepository,
	adminRepo repository.AdminRepository,
) QuizUsecase {
	return &quizUsecase{
		quizRepo:         quizRepo,
		registrationRepo: registrationRepo,
		adminRepo:        adminRepo,
		now:              time.Now,
	}
}

func (u *quizUsecase) List(ctx context.Context, onlyActive bool) ([]*model.Quiz, error) {
	params := repository.FilterQuizzesParams{}
	if onlyActive {
		status := model.QuizStatusActive
		params.Status = &status
	}

	return u.quizRepo.ListQuizzes(ctx, params)
}

func (u *quizUsecase) Get(ctx context.Context, id string) (*model.Quiz, error) {
	quiz, err := u.quizRepo.GetQuiz(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrQuizNotFound
		}

		return nil, err
	}

	return quiz, nil
}

func (u *quizUsecase) Create(ctx context.Context, params CreateQuizParams) (*model.Quiz, error) {
	quiz := &model.Quiz{
		Title:          params.Title,
		Description:    params.Description,
		Category:       params.Category,
		Difficulty:     params.Difficulty,
		Duration:       defaultQuizDuration,
		TotalQuestions: defaultQuizTotalQuestions,
		PassingScore:   defaultQuizPassingScore,
		StartDate:      u.now(),
		Status:         model.QuizStatusActive,
	}

	if params.Duration != nil {
		quiz.Duration = *params.Duration
	}
	if params.TotalQuestions != nil {
		quiz.TotalQuestions = *params.TotalQuestions
	}
	if params.PassingScore != nil {
		quiz.PassingScore = *params.PassingScore
	}
	if params.StartDate != nil {
		quiz.StartDate = *params.StartDate
	}

	return u.quizRepo.CreateQuiz(ctx, quiz)
}

func (u *quizUsecase) Update(
	ctx context.Context,
	id string,
	params repository.UpdateQuizParams,
) (*model.Quiz, error) {
	quiz, err := u.quizRepo.UpdateQuiz(ctx, id, params)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrQuizNotFound
		}

		return nil, err
	}

	return quiz, nil
}

func (u *quizUsecase) Delete(ctx context.Context, id string) error {
	if _, err := u.quizRepo.DeleteQuiz(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrQuizNotFound
		}

		return err
	}

	return nil
}

func (u *quizUsecase) Stats(ctx context.Context) (*DashboardStats, error) {
	totalQuizzes, err := u.quizRepo.CountQuizzes(ctx, repository.FilterQuizzesParams{})
	if err != nil {
		return nil, err
	}

	totalRegistrations, err := u.registrationRepo.CountRegistrations(ctx)
	if err != nil {
		return nil, err
	}

	activeStatus := model.QuizStatusActive
	activeQuizzes, err := u.quizRepo.CountQuizzes(ctx, repository.FilterQuizzesParams{Status: &activeStatus})
	if err != nil {
		return nil, err
	}

	recent, err := u.registrationRepo.ListRegistrations(ctx, repository.FilterRegistrationsParams{Limit: 5})
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalQuizzes:        totalQuizzes,
		TotalRegistrations:  totalRegistrations,
		ActiveQuizzes:       activeQuizzes,
		RecentRegistrations: recent,
	}, nil
}

// Seed populates an empty catalog with a starter set of quizzes and a
// default admin account. Returns false without touching anything when
// quizzes already exist.
func (u *quizUsecase) Seed(ctx context.Context) (bool, error) {
	count, err := u.quizRepo.CountQuizzes(ctx, repository.FilterQuizzesParams{})
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	now := u.now()
	quizzes := []*model.Quiz{
		{Title: "HTML Fundamentals", Description: "Test your HTML knowledge", Category: "Web Development", Difficulty: model.DifficultyBeginner, Duration: 30, TotalQuestions: 15, PassingScore: 60},
		{Title: "JavaScript ES6+", Description: "Modern JavaScript features", Category: "Programming", Difficulty: model.DifficultyIntermediate, Duration: 45, TotalQuestions: 20, PassingScore: 70},
		{Title: "CSS Grid & Flexbox", Description: "Advanced CSS layouts", Category: "Web Development", Difficulty: model.DifficultyIntermediate, Duration: 40, TotalQuestions: 18, PassingScore: 65},
		{Title: "Go Fundamentals", Description: "Core language concepts", Category: "Programming", Difficulty: model.DifficultyBeginner, Duration: 50, TotalQuestions: 25, PassingScore: 60},
		{Title: "Python Programming", Description: "Python from basics to advanced", Category: "Programming", Difficulty: model.DifficultyAdvanced, Duration: 60, TotalQuestions: 30, PassingScore: 75},
		{Title: "MongoDB Essentials", Description: "NoSQL database concepts", Category: "Database", Difficulty: model.DifficultyIntermediate, Duration: 45, TotalQuestions: 20, PassingScore: 70},
		{Title: "Data Structures", Description: "DS&A for interviews", Category: "Programming", Difficulty: model.DifficultyAdvanced, Duration: 90, TotalQuestions: 35, PassingScore: 80},
		{Title: "SQL Database", Description: "Advanced SQL queries", Category: "Database", Difficulty: model.DifficultyAdvanced, Duration: 60, TotalQuestions: 25, PassingScore: 75},
	}
	for _, quiz := range quizzes {
		quiz.StartDate = now
		quiz.Status = model.QuizStatusActive
	}

	if err := u.quizRepo.CreateQuizzes(ctx, quizzes); err != nil {
		return false, err
	}

	adminCount, err := u.adminRepo.CountAdmins(ctx)
	if err != nil {
		return false, err
	}
	if adminCount == 0 {
		passwordHash, err := security.HashPassword("Admin@123")
		if err != nil {
			return false, err
		}

		if _, err := u.adminRepo.CreateAdmin(ctx, &model.Admin{
			Name:         "Admin",
			Email:        "admin@quizmaster.com",
			PasswordHash: passwordHash,
			Role:         "admin",
			Status:       "active",
		}); err != nil && !mongo.IsDuplicateKeyError(err) {
			return false, err
		}
	}

	return true, nil
}
