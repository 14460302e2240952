package usecase

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/quizmaster/quizmaster-api/internal/model"
	"github.com/quizmaster/quizmaster-api/internal/repository"
	"github.com/quizmaster/quizmaster-api/internal/security"
	"github.com/quizmaster/quizmaster-api/internal/validate"
)

// AccountKind selects one of the two account namespaces. Each kind has
// its own collection and its own email uniqueness scope.
type AccountKind string

const (
	AccountKindStudent AccountKind = "student"
	AccountKindAdmin   AccountKind = "admin"
)

// ParseAccountKind converts a path or query value into an AccountKind.
func ParseAccountKind(s string) (AccountKind, error) {
	switch AccountKind(s) {
	case AccountKindStudent:
		return AccountKindStudent, nil
	case AccountKindAdmin:
		return AccountKindAdmin, nil
	default:
		return "", ErrUnknownAccountKind
	}
}

// AccountUsecase defines the business logic for account registration,
// login and credential management.
type AccountUsecase interface {
	RegisterStudent(ctx context.Context, params RegisterStudentParams) (*model.Student, error)
	RegisterAdmin(ctx context.Context, params RegisterAdminParams) (*model.Admin, error)
	LoginStudent(ctx context.Context, email, password string) (*model.Student, error)
	LoginAdmin(ctx context.Context, email, password string) (*model.Admin, error)
	ChangePassword(ctx context.Context, kind AccountKind, id, currentPassword, newPassword string) error
	EmailExists(ctx context.Context, kind AccountKind, email string) (bool, error)
	GetStudent(ctx context.Context, id string) (*model.Student, error)
}

// RegisterStudentParams defines the parameters for student registration.
type RegisterStudentParams struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	Mobile      string
	DateOfBirth string
	College     string
	Course      string
	Year        string
}

// RegisterAdminParams defines the parameters for admin registration.
type RegisterAdminParams struct {
	Name       string
	Email      string
	Password   string
	Department string
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrWeakPassword       = errors.New("new password does not meet requirements")
	ErrUnknownAccountKind = errors.New("unknown account kind")
)

type accountUsecase struct {
	studentRepo repository.StudentRepository
	adminRepo   repository.AdminRepository
}

// NewAccountUsecase creates a new instance of AccountUsecase.
func NewAccountUsecase(
	studentRepo repository.StudentRepository,
	adminRepo repository.AdminRepository,
) AccountUsecase {
	return &accountUsecase{
		studentRepo: studentRepo,
		adminRepo:   adminRepo,
	}
}

func (u *accountUsecase) RegisterStudent(
	ctx context.Context,
	params RegisterStudentParams,
) (*model.Student, error) {
	email := normalizeEmail(params.Email)

	// Advisory pre-check; the unique index is the authoritative guard.
	exists, err := u.EmailExists(ctx, AccountKindStudent, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	student, err := u.studentRepo.CreateStudent(ctx, &model.Student{
		FirstName:    strings.TrimSpace(params.FirstName),
		LastName:     strings.TrimSpace(params.LastName),
		Email:        email,
		PasswordHash: passwordHash,
		Mobile:       strings.TrimSpace(params.Mobile),
		DateOfBirth:  strings.TrimSpace(params.DateOfBirth),
		College:      params.College,
		Course:       params.Course,
		Year:         params.Year,
		Role:         "student",
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}

		return nil, err
	}

	return student, nil
}

func (u *accountUsecase) RegisterAdmin(
	ctx context.Context,
	params RegisterAdminParams,
) (*model.Admin, error) {
	email := normalizeEmail(params.Email)

	exists, err := u.EmailExists(ctx, AccountKindAdmin, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	admin, err := u.adminRepo.CreateAdmin(ctx, &model.Admin{
		Name:         strings.TrimSpace(params.Name),
		Email:        email,
		PasswordHash: passwordHash,
		Department:   params.Department,
		Role:         "admin",
		Status:       "active",
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}

		return nil, err
	}

	return admin, nil
}

func (u *accountUsecase) LoginStudent(ctx context.Context, email, password string) (*model.Student, error) {
	student, err := u.studentRepo.GetStudentByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if ok, err := security.VerifyPassword(password, student.PasswordHash); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrInvalidCredentials
	}

	return student, nil
}

func (u *accountUsecase) LoginAdmin(ctx context.Context, email, password string) (*model.Admin, error) {
	admin, err := u.adminRepo.GetAdminByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if ok, err := security.VerifyPassword(password, admin.PasswordHash); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}

func (u *accountUsecase) ChangePassword(
	ctx context.Context,
	kind AccountKind,
	id, currentPassword, newPassword string,
) error {
	switch kind {
	case AccountKindStudent:
		return u.changeStudentPassword(ctx, id, currentPassword, newPassword)
	case AccountKindAdmin:
		return u.changeAdminPassword(ctx, id, currentPassword, newPassword)
	default:
		return ErrUnknownAccountKind
	}
}

func (u *accountUsecase) changeStudentPassword(ctx context.Context, id, currentPassword, newPassword string) error {
	student, err := u.studentRepo.GetStudent(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrAccountNotFound
		}

		return err
	}

	if ok, err := security.VerifyPassword(currentPassword, student.PasswordHash); err != nil {
		return err
	} else if !ok {
		return ErrInvalidCredentials
	}

	if !validate.StudentPassword(newPassword) {
		return ErrWeakPassword
	}

	passwordHash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}

	_, err = u.studentRepo.UpdateStudent(ctx, id, repository.UpdateStudentParams{
		PasswordHash: &passwordHash,
	})
	return err
}

func (u *accountUsecase) changeAdminPassword(ctx context.Context, id, currentPassword, newPassword string) error {
	admin, err := u.adminRepo.GetAdmin(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrAccountNotFound
		}

		return err
	}

	if ok, err := security.VerifyPassword(currentPassword, admin.PasswordHash); err != nil {
		return err
	} else if !ok {
		return ErrInvalidCredentials
	}

	if !validate.AdminPassword(newPassword) {
		return ErrWeakPassword
	}

	passwordHash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}

	_, err = u.adminRepo.UpdateAdmin(ctx, id, repository.UpdateAdminParams{
		PasswordHash: &passwordHash,
	})
	return err
}

func (u *accountUsecase) EmailExists(ctx context.Context, kind AccountKind, email string) (bool, error) {
	email = normalizeEmail(email)

	var err error
	switch kind {
	case AccountKindStudent:
		_, err = u.studentRepo.GetStudentByEmail(ctx, email)
	case AccountKindAdmin:
		_, err = u.adminRepo.GetAdminByEmail(ctx, email)
	default:
		return false, ErrUnknownAccountKind
	}

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (u *accountUsecase) GetStudent(ctx context.Context, id string) (*model.Student, error) {
	student, err := u.studentRepo.GetStudent(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}

		return nil, err
	}

	return student, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
