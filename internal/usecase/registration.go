package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/quizmaster/quizmaster-api/internal/mailer"
	"github.com/quizmaster/quizmaster-api/internal/model"
	"github.com/quizmaster/quizmaster-api/internal/repository"
)

// RegistrationUsecase defines the business logic for quiz registrations.
type RegistrationUsecase interface {
	Register(ctx context.Context, params RegisterForQuizParams) (*model.Registration, error)
	List(ctx context.Context) ([]*model.Registration, error)
	ListByQuiz(ctx context.Context, quizID string) ([]*model.Registration, error)
}

// RegisterForQuizParams defines the parameters for registering for a quiz.
type RegisterForQuizParams struct {
	FirstName   string
	LastName    string
	Email       string
	Mobile      string
	DateOfBirth string
	College     string
	Course      string
	Year        string
	QuizID      string
}

var ErrAlreadyRegistered = errors.New("already registered for this quiz")

type registrationUsecase struct {
	registrationRepo repository.RegistrationRepository
	quizRepo         repository.QuizRepository
	mailer           *mailer.Mailer
	logger           *zerolog.Logger
}

// NewRegistrationUsecase creates a new instance of RegistrationUsecase.
// The mailer may be nil, in which case no confirmation mail is sent.
func NewRegistrationUsecase(
	registrationRepo repository.RegistrationRepository,
	quizRepo repository.QuizRepository,
	mailer *mailer.Mailer,
	logger *zerolog.Logger,
) RegistrationUsecase {
	return &registrationUsecase{
		registrationRepo: registrationRepo,
		quizRepo:         quizRepo,
		mailer:           mailer,
		logger:           logger,
	}
}

func (u *registrationUsecase) Register(
	ctx context.Context,
	params RegisterForQuizParams,
) (*model.Registration, error) {
	email := strings.TrimSpace(params.Email)

	quiz, err := u.quizRepo.GetQuiz(ctx, params.QuizID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrQuizNotFound
		}

		return nil, err
	}

	// Advisory pre-check; the compound unique index on (email, quiz_id)
	// closes the race between concurrent identical submissions.
	if _, err := u.registrationRepo.GetRegistrationByEmailAndQuiz(ctx, email, params.QuizID); err == nil {
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	registration, err := u.registrationRepo.CreateRegistration(ctx, &model.Registration{
		FirstName:   strings.TrimSpace(params.FirstName),
		LastName:    strings.TrimSpace(params.LastName),
		Email:       email,
		Mobile:      strings.TrimSpace(params.Mobile),
		DateOfBirth: strings.TrimSpace(params.DateOfBirth),
		College:     params.College,
		Course:      params.Course,
		Year:        params.Year,
		QuizID:      params.QuizID,
		Status:      model.RegistrationStatusRegistered,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAlreadyRegistered
		}

		return nil, err
	}

	u.sendConfirmation(registration, quiz)

	return registration, nil
}

func (u *registrationUsecase) List(ctx context.Context) ([]*model.Registration, error) {
	return u.registrationRepo.ListRegistrations(ctx, repository.FilterRegistrationsParams{})
}

func (u *registrationUsecase) ListByQuiz(ctx context.Context, quizID string) ([]*model.Registration, error) {
	return u.registrationRepo.ListRegistrations(ctx, repository.FilterRegistrationsParams{QuizID: &quizID})
}

// sendConfirmation emails the registrant in the background. Failure to
// send never fails the registration.
func (u *registrationUsecase) sendConfirmation(registration *model.Registration, quiz *model.Quiz) {
	if u.mailer == nil {
		return
	}

	htmlBody := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You have successfully registered for <strong>%s</strong>.</p>
		<p>Date: %s<br>Duration: %d minutes<br>Questions: %d</p>

		<p>Good luck!</p>
		<p>QuizMaster Team</p>
	`, registration.FirstName, quiz.Title, quiz.StartDate.Format("Jan 2, 2006"), quiz.Duration, quiz.TotalQuestions)

	go func() {
		if err := u.mailer.SendHTML([]string{registration.Email}, "Registration Confirmed", htmlBody); err != nil {
			u.logger.Error().Err(err).
				Str("email", registration.Email).
				Msg("failed to send registration confirmation")
		}
	}()
}
