package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/quizmaster/quizmaster-api/internal/model"
	"github.com/quizmaster/quizmaster-api/internal/repository"
)

type quizStubRepo struct {
	byID map[string]*model.Quiz
}

func newQuizStubRepo() *quizStubRepo {
	return &quizStubRepo{byID: map[string]*model.Quiz{}}
}

func (s *quizStubRepo) add(quiz *model.Quiz) *model.Quiz {
	quiz.ID = bson.NewObjectID()
	copy := *quiz
	s.byID[quiz.ID.Hex()] = &copy
	return quiz
}

func (s *quizStubRepo) CreateQuiz(_ context.Context, quiz *model.Quiz) (*model.Quiz, error) {
	return s.add(quiz), nil
}

func (s *quizStubRepo) CreateQuizzes(_ context.Context, quizzes []*model.Quiz) error {
	for _, quiz := range quizzes {
		s.add(quiz)
	}
	return nil
}

func (s *quizStubRepo) GetQuiz(_ context.Context, id string) (*model.Quiz, error) {
	if quiz, ok := s.byID[id]; ok {
		copy := *quiz
		return &copy, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (s *quizStubRepo) ListQuizzes(
	_ context.Context,
	params repository.FilterQuizzesParams,
) ([]*model.Quiz, error) {
	out := []*model.Quiz{}
	for _, quiz := range s.byID {
		if params.Status != nil && quiz.Status != *params.Status {
			continue
		}
		copy := *quiz
		out = append(out, &copy)
	}
	return out, nil
}

func (s *quizStubRepo) UpdateQuiz(
	_ context.Context,
	id string,
	params repository.UpdateQuizParams,
) (*model.Quiz, error) {
	quiz, ok := s.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if params.Title != nil {
		quiz.Title = *params.Title
	}
	if params.Description != nil {
		quiz.Description = *params.Description
	}
	if params.Category != nil {
		quiz.Category = *params.Category
	}
	if params.Difficulty != nil {
		quiz.Difficulty = *params.Difficulty
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
	if params.Status != nil {
		quiz.Status = *params.Status
	}
	quiz.UpdatedAt = time.Now()
	copy := *quiz
	return &copy, nil
}

func (s *quizStubRepo) DeleteQuiz(_ context.Context, id string) (*model.Quiz, error) {
	quiz, ok := s.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(s.byID, id)
	return quiz, nil
}

func (s *quizStubRepo) CountQuizzes(
	_ context.Context,
	params repository.FilterQuizzesParams,
) (int64, error) {
	quizzes, _ := s.ListQuizzes(context.Background(), params)
	return int64(len(quizzes)), nil
}

func newQuizTestUsecase(
	quizzes repository.QuizRepository,
	registrations repository.RegistrationRepository,
	admins repository.AdminRepository,
) *quizUsecase {
	return &quizUsecase{
		quizRepo:         quizzes,
		registrationRepo: registrations,
		adminRepo:        admins,
		now:              func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) },
	}
}

func TestCreateQuizAppliesDefaults(t *testing.T) {
	quizzes := newQuizStubRepo()
	u := newQuizTestUsecase(quizzes, newRegistrationStubRepo(), newAdminStubRepo())

	quiz, err := u.Create(context.Background(), CreateQuizParams{
		Title:      "Go Fundamentals",
		Category:   "Programming",
		Difficulty: model.DifficultyBeginner,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if quiz.Duration != 30 || quiz.TotalQuestions != 10 || quiz.PassingScore != 60 {
		t.Errorf("unexpected defaults: %+v", quiz)
	}
	if quiz.Status != model.QuizStatusActive {
		t.Errorf("expected Active status, got %q", quiz.Status)
	}
	if quiz.StartDate.IsZero() {
		t.Error("expected a defaulted start date")
	}
}

func TestCreateQuizHonorsExplicitFields(t *testing.T) {
	quizzes := newQuizStubRepo()
	u := newQuizTestUsecase(quizzes, newRegistrationStubRepo(), newAdminStubRepo())

	duration, total, passing := 90, 35, 80
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	quiz, err := u.Create(context.Background(), CreateQuizParams{
		Title:          "Data Structures",
		Category:       "Programming",
		Difficulty:     model.DifficultyAdvanced,
		Duration:       &duration,
		TotalQuestions: &total,
		PassingScore:   &passing,
		StartDate:      &start,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if quiz.Duration != 90 || quiz.TotalQuestions != 35 || quiz.PassingScore != 80 {
		t.Errorf("explicit fields lost: %+v", quiz)
	}
	if !quiz.StartDate.Equal(start) {
		t.Errorf("expected start date %v, got %v", start, quiz.StartDate)
	}
}

func TestUpdateQuizPartialMerge(t *testing.T) {
	quizzes := newQuizStubRepo()
	quiz := quizzes.add(&model.Quiz{
		Title:       "Go Fundamentals",
		Description: "Core language concepts",
		Status:      model.QuizStatusActive,
	})
	u := newQuizTestUsecase(quizzes, newRegistrationStubRepo(), newAdminStubRepo())

	// Explicit empty description clears it; absent title is untouched.
	empty := ""
	updated, err := u.Update(context.Background(), quiz.ID.Hex(), repository.UpdateQuizParams{
		Description: &empty,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Description != "" {
		t.Errorf("expected cleared description, got %q", updated.Description)
	}
	if updated.Title != "Go Fundamentals" {
		t.Errorf("title must be untouched, got %q", updated.Title)
	}
}

func TestUpdateQuizWithNoFieldsIsTouch(t *testing.T) {
	quizzes := newQuizStubRepo()
	quiz := quizzes.add(&model.Quiz{
		Title:       "Go Fundamentals",
		Description: "Core language concepts",
		Status:      model.QuizStatusActive,
	})
	u := newQuizTestUsecase(quizzes, newRegistrationStubRepo(), newAdminStubRepo())

	updated, err := u.Update(context.Background(), quiz.ID.Hex(), repository.UpdateQuizParams{})
	if err != nil {
		t.Fatalf("Update with no fields returned error: %v", err)
	}
	if updated.Title != "Go Fundamentals" || updated.Description != "Core language concepts" {
		t.Errorf("touch must not change fields, got %q / %q", updated.Title, updated.Description)
	}
	if updated.UpdatedAt.IsZero() {
		t.Error("touch must stamp updated_at")
	}
}

func TestQuizNotFound(t *testing.T) {
	u := newQuizTestUsecase(newQuizStubRepo(), newRegistrationStubRepo(), newAdminStubRepo())

	if _, err := u.Get(context.Background(), bson.NewObjectID().Hex()); !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("Get: expected ErrQuizNotFound, got %v", err)
	}
	if _, err := u.Update(context.Background(), bson.NewObjectID().Hex(), repository.UpdateQuizParams{}); !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("Update: expected ErrQuizNotFound, got %v", err)
	}
	if err := u.Delete(context.Background(), bson.NewObjectID().Hex()); !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("Delete: expected ErrQuizNotFound, got %v", err)
	}
}

func TestListQuizzesActiveFilter(t *testing.T) {
	quizzes := newQuizStubRepo()
	quizzes.add(&model.Quiz{Title: "Go Fundamentals", Status: model.QuizStatusActive})
	quizzes.add(&model.Quiz{Title: "Archived Quiz", Status: "Closed"})
	u := newQuizTestUsecase(quizzes, newRegistrationStubRepo(), newAdminStubRepo())

	all, err := u.List(context.Background(), false)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 quizzes, got %d", len(all))
	}

	active, err := u.List(context.Background(), true)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(active) != 1 || active[0].Status != model.QuizStatusActive {
		t.Fatalf("unexpected active quizzes: %+v", active)
	}
}

func TestStats(t *testing.T) {
	quizzes := newQuizStubRepo()
	quiz := quizzes.add(&model.Quiz{Title: "Go Fundamentals", Status: model.QuizStatusActive})
	quizzes.add(&model.Quiz{Title: "Archived Quiz", Status: "Closed"})

	registrations := newRegistrationStubRepo()
	reg := NewRegistrationUsecase(registrations, quizzes, nil, testLogger())
	if _, err := reg.Register(context.Background(), registrationParams(quiz.ID.Hex())); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	u := newQuizTestUsecase(quizzes, registrations, newAdminStubRepo())
	stats, err := u.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.TotalQuizzes != 2 || stats.ActiveQuizzes != 1 || stats.TotalRegistrations != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if len(stats.RecentRegistrations) != 1 {
		t.Errorf("expected 1 recent registration, got %d", len(stats.RecentRegistrations))
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	quizzes := newQuizStubRepo()
	admins := newAdminStubRepo()
	u := newQuizTestUsecase(quizzes, newRegistrationStubRepo(), admins)

	seeded, err := u.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	if !seeded {
		t.Fatal("expected first seed to populate the catalog")
	}
	if len(quizzes.byID) == 0 {
		t.Fatal("expected seeded quizzes")
	}
	if admins.createCalled != 1 {
		t.Fatalf("expected one seeded admin, got %d creates", admins.createCalled)
	}

	seeded, err = u.Seed(context.Background())
	if err != nil {
		t.Fatalf("second Seed returned error: %v", err)
	}
	if seeded {
		t.Fatal("expected second seed to be a no-op")
	}
}
