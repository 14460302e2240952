package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/quizmaster/quizmaster-api/internal/payload"
	"github.com/quizmaster/quizmaster-api/internal/usecase"
	"github.com/quizmaster/quizmaster-api/internal/validate"
)

// AccountHandler serves the student and admin account endpoints.
type AccountHandler struct {
	logger         *zerolog.Logger
	validator      *validate.Validator
	accountUsecase usecase.AccountUsecase
}

func NewAccountHandler(
	logger *zerolog.Logger,
	validator *validate.Validator,
	accountUsecase usecase.AccountUsecase,
) *AccountHandler {
	return &AccountHandler{
		logger:         logger,
		validator:      validator,
		accountUsecase: accountUsecase,
	}
}

func (h *AccountHandler) RegisterStudent(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterStudentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, KindValidation, err.Error())
		return
	}

	if fields := h.validator.Struct(req); fields != nil {
		writeFieldErrors(w, fields)
		return
	}

	student, err := h.accountUsecase.RegisterStudent(r.Context(), usecase.RegisterStudentParams{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		Mobile:      req.Mobile,
		DateOfBirth: req.DateOfBirth,
		College:     req.College,
		Course:      req.Course,
		Year:        req.Year,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			writeError(w, http.StatusConflict, KindConflict, "email already registered")
			return
		}

		h.logger.Error().Err(err).Msg("failed to register student")
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, payload.NewStudentResponse(student))
}

func (h *AccountHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterAdminRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, KindValidation, err.Error())
		return
	}

	if fields := h.validator.Struct(req); fields != nil {
		writeFieldErrors(w, fields)
		return
	}

	admin, err := h.accountUsecase.RegisterAdmin(r.Context(), usecase.RegisterAdminParams{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Department: req.Department,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			writeError(w, http.StatusConflict, KindConflict, "email already registered")
			return
		}

		h.logger.Error().Err(err).Msg("failed to register admin")
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, payload.NewAdminResponse(admin))
}

func (h *AccountHandler) LoginStudent(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, KindValidation, err.Error())
		return
	}

	if fields := h.validator.Struct(req); fields != nil {
		writeFieldErrors(w, fields)
		return
	}

	student, err := h.accountUsecase.LoginStudent(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, KindUnauthorized, "invalid email or password")
			return
		}

		h.logger.Error().Err(err).Msg("failed to log in student")
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, payload.NewStudentResponse(student))
}

func (h *AccountHandler) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, KindValidation, err.Error())
		return
	}

	if fields := h.validator.Struct(req); fields != nil {
		writeFieldErrors(w, fields)
		return
	}

	admin, err := h.accountUsecase.LoginAdmin(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, KindUnauthorized, "invalid email or password")
			return
		}

		h.logger.Error().Err(err).Msg("failed to log in admin")
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, payload.NewAdminResponse(admin))
}

func (h *AccountHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	kind, err := usecase.ParseAccountKind(r.URL.Query().Get("kind"))
	if err != nil {
		writeError(w, http.StatusBadRequest, KindValidation, "kind must be student or admin")
		return
	}

	var req payload.CheckEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, KindValidation, err.Error())
		return
	}

	if fields := h.validator.Struct(req); fields != nil {
		writeFieldErrors(w, fields)
		return
	}

	exists, err := h.accountUsecase.EmailExists(r.Context(), kind, req.Email)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to check email")
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, payload.CheckEmailResponse{Exists: exists})
}

func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	kind, err := usecase.ParseAccountKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusBadRequest, KindValidation, "kind must be student or admin")
		return
	}

	var req payload.ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, KindValidation, err.Error())
		return
	}

	if fields := h.validator.Struct(req); fields != nil {
		writeFieldErrors(w, fields)
		return
	}

	id := chi.URLParam(r, "id")
	err = h.accountUsecase.ChangePassword(r.Context(), kind, id, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAccountNotFound):
			writeError(w, http.StatusNotFound, KindNotFound, "account not found")
		case errors.Is(err, usecase.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, KindUnauthorized, "current password is incorrect")
		case errors.Is(err, usecase.ErrWeakPassword):
			writeError(w, http.StatusBadRequest, KindValidation, "new password does not meet requirements")
		default:
			h.logger.Error().Err(err).Msg("failed to change password")
			writeUsecaseError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "password changed successfully"})
}

func (h *AccountHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	student, err := h.accountUsecase.GetStudent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, usecase.ErrAccountNotFound) {
			writeError(w, http.StatusNotFound, KindNotFound, "student not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to get student")
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, payload.NewStudentResponse(student))
}
