package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/quizmaster/quizmaster-api/internal/model"
	"github.com/quizmaster/quizmaster-api/internal/repository"
)

type registrationStubRepo struct {
	byKey      map[string]*model.Registration
	failCreate bool
}

func newRegistrationStubRepo() *registrationStubRepo {
	return &registrationStubRepo{byKey: map[string]*model.Registration{}}
}

func regKey(email, quizID string) string { return email + "|" + quizID }

func (s *registrationStubRepo) CreateRegistration(
	_ context.Context,
	registration *model.Registration,
) (*model.Registration, error) {
	if s.failCreate {
		return nil, duplicateKeyError()
	}
	key := regKey(registration.Email, registration.QuizID)
	if _, ok := s.byKey[key]; ok {
		return nil, duplicateKeyError()
	}
	registration.ID = bson.NewObjectID()
	copy := *registration
	s.byKey[key] = &copy
	return registration, nil
}

func (s *registrationStubRepo) GetRegistrationByEmailAndQuiz(
	_ context.Context,
	email, quizID string,
) (*model.Registration, error) {
	if registration, ok := s.byKey[regKey(email, quizID)]; ok {
		copy := *registration
		return &copy, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (s *registrationStubRepo) ListRegistrations(
	_ context.Context,
	params repository.FilterRegistrationsParams,
) ([]*model.Registration, error) {
	out := []*model.Registration{}
	for _, registration := range s.byKey {
		if params.QuizID != nil && registration.QuizID != *params.QuizID {
			continue
		}
		copy := *registration
		out = append(out, &copy)
		if params.Limit > 0 && int64(len(out)) == params.Limit {
			break
		}
	}
	return out, nil
}

func (s *registrationStubRepo) CountRegistrations(_ context.Context) (int64, error) {
	return int64(len(s.byKey)), nil
}

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func registrationParams(quizID string) RegisterForQuizParams {
	return RegisterForQuizParams{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "a@b.com",
		Mobile:    "2345678901",
		College:   "State College",
		Course:    "CS",
		Year:      "2",
		QuizID:    quizID,
	}
}

func TestRegisterForQuiz(t *testing.T) {
	quizzes := newQuizStubRepo()
	quiz := quizzes.add(&model.Quiz{Title: "Go Fundamentals", Status: model.QuizStatusActive})

	registrations := newRegistrationStubRepo()
	u := NewRegistrationUsecase(registrations, quizzes, nil, testLogger())

	registration, err := u.Register(context.Background(), registrationParams(quiz.ID.Hex()))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if registration.Status != model.RegistrationStatusRegistered {
		t.Errorf("expected status %q, got %q", model.RegistrationStatusRegistered, registration.Status)
	}
	if registration.QuizID != quiz.ID.Hex() {
		t.Errorf("unexpected quiz id %q", registration.QuizID)
	}

	// Same (email, quizId) pair again: conflict.
	if _, err := u.Register(context.Background(), registrationParams(quiz.ID.Hex())); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestRegisterForQuizTrimsFields(t *testing.T) {
	quizzes := newQuizStubRepo()
	quiz := quizzes.add(&model.Quiz{Title: "Go Fundamentals", Status: model.QuizStatusActive})
	u := NewRegistrationUsecase(newRegistrationStubRepo(), quizzes, nil, testLogger())

	params := registrationParams(quiz.ID.Hex())
	params.Mobile = " 2345678901 "
	params.DateOfBirth = " 2000-01-15 "
	registration, err := u.Register(context.Background(), params)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if registration.Mobile != "2345678901" {
		t.Errorf("expected trimmed mobile, got %q", registration.Mobile)
	}
	if registration.DateOfBirth != "2000-01-15" {
		t.Errorf("expected trimmed date of birth, got %q", registration.DateOfBirth)
	}
}

func TestRegisterForQuizUnknownQuiz(t *testing.T) {
	u := NewRegistrationUsecase(newRegistrationStubRepo(), newQuizStubRepo(), nil, testLogger())

	if _, err := u.Register(context.Background(), registrationParams(bson.NewObjectID().Hex())); !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestRegisterForQuizDuplicateKeyRace(t *testing.T) {
	// The advisory pre-check passes but a concurrent identical
	// submission wins the insert: the unique index violation must map
	// to ErrAlreadyRegistered, so at most one of N identical
	// submissions succeeds.
	quizzes := newQuizStubRepo()
	quiz := quizzes.add(&model.Quiz{Title: "Go Fundamentals", Status: model.QuizStatusActive})

	registrations := newRegistrationStubRepo()
	registrations.failCreate = true
	u := NewRegistrationUsecase(registrations, quizzes, nil, testLogger())

	if _, err := u.Register(context.Background(), registrationParams(quiz.ID.Hex())); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestListRegistrationsByQuiz(t *testing.T) {
	quizzes := newQuizStubRepo()
	first := quizzes.add(&model.Quiz{Title: "Go Fundamentals", Status: model.QuizStatusActive})
	second := quizzes.add(&model.Quiz{Title: "SQL Database", Status: model.QuizStatusActive})

	registrations := newRegistrationStubRepo()
	u := NewRegistrationUsecase(registrations, quizzes, nil, testLogger())

	if _, err := u.Register(context.Background(), registrationParams(first.ID.Hex())); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	// Same email, different quiz: allowed.
	if _, err := u.Register(context.Background(), registrationParams(second.ID.Hex())); err != nil {
		t.Fatalf("Register for second quiz returned error: %v", err)
	}

	all, err := u.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 registrations, got %d", len(all))
	}

	byQuiz, err := u.ListByQuiz(context.Background(), first.ID.Hex())
	if err != nil {
		t.Fatalf("ListByQuiz returned error: %v", err)
	}
	if len(byQuiz) != 1 || byQuiz[0].QuizID != first.ID.Hex() {
		t.Fatalf("unexpected filtered registrations: %+v", byQuiz)
	}
}
