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

// RegistrationHandler serves the quiz registration endpoints.
type RegistrationHandler struct {
	logger              *zerolog.Logger
	validator           *validate.Validator
	registrationUsecase usecase.RegistrationUsecase
}

func NewRegistrationHandler(
	logger *zerolog.Logger,
	validator *validate.Validator,
	registrationUsecase usecase.RegistrationUsecase,
) *RegistrationHandler {
	return &RegistrationHandler{
		logger:              logger,
		validator:           validator,
		registrationUsecase: registrationUsecase,
	}
}

func (h *RegistrationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateRegistrationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, KindValidation, err.Error())
		return
	}

	if fields := h.validator.Struct(req); fields != nil {
		writeFieldErrors(w, fields)
		return
	}

	registration, err := h.registrationUsecase.Register(r.Context(), usecase.RegisterForQuizParams{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Mobile:      req.Mobile,
		DateOfBirth: req.DateOfBirth,
		College:     req.College,
		Course:      req.Course,
		Year:        req.Year,
		QuizID:      req.QuizID,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrQuizNotFound):
			writeError(w, http.StatusNotFound, KindNotFound, "quiz not found")
		case errors.Is(err, usecase.ErrAlreadyRegistered):
			writeError(w, http.StatusConflict, KindConflict, "already registered for this quiz")
		default:
			h.logger.Error().Err(err).Msg("failed to create registration")
			writeUsecaseError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, payload.NewRegistrationResponse(registration))
}

func (h *RegistrationHandler) List(w http.ResponseWriter, r *http.Request) {
	registrations, err := h.registrationUsecase.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list registrations")
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, payload.NewRegistrationListResponse(registrations))
}

func (h *RegistrationHandler) ListByQuiz(w http.ResponseWriter, r *http.Request) {
	registrations, err := h.registrationUsecase.ListByQuiz(r.Context(), chi.URLParam(r, "quizId"))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list registrations by quiz")
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, payload.NewRegistrationListResponse(registrations))
}
