package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/quizmaster/quizmaster-api/internal/payload"
	"github.com/quizmaster/quizmaster-api/internal/repository"
	"github.com/quizmaster/quizmaster-api/internal/usecase"
	"github.com/quizmaster/quizmaster-api/internal/validate"
)

// QuizHandler serves the quiz catalog and admin dashboard endpoints.
type QuizHandler struct {
	logger      *zerolog.Logger
	validator   *validate.Validator
	quizUsecase usecase.QuizUsecase
}

func NewQuizHandler(
	logger *zerolog.Logger,
	validator *validate.Validator,
	quizUsecase usecase.QuizUsecase,
) *QuizHandler {
	return &QuizHandler{
		logger:      logger,
		validator:   validator,
		quizUsecase: quizUsecase,
	}
}

func (h *QuizHandler) List(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("active") == "true"

	quizzes, err := h.quizUsecase.List(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list quizzes")
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, payload.NewQuizListResponse(quizzes))
}

func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.quizUsecase.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, usecase.ErrQuizNotFound) {
			writeError(w, http.StatusNotFound, KindNotFound, "quiz not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to get quiz")
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, payload.NewQuizResponse(quiz))
}

func (h *QuizHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateQuizRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, KindValidation, err.Error())
		return
	}

	if fields := h.validator.Struct(req); fields != nil {
		writeFieldErrors(w, fields)
		return
	}

	quiz, err := h.quizUsecase.Create(r.Context(), usecase.CreateQuizParams{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Difficulty:     req.Difficulty,
		Duration:       req.Duration,
		TotalQuestions: req.TotalQuestions,
		PassingScore:   req.PassingScore,
		StartDate:      req.StartDate,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create quiz")
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, payload.NewQuizResponse(quiz))
}

func (h *QuizHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateQuizRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, KindValidation, err.Error())
		return
	}

	if fields := h.validator.Struct(req); fields != nil {
		writeFieldErrors(w, fields)
		return
	}

	quiz, err := h.quizUsecase.Update(r.Context(), chi.URLParam(r, "id"), repository.UpdateQuizParams{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Difficulty:     req.Difficulty,
		Duration:       req.Duration,
		TotalQuestions: req.TotalQuestions,
		PassingScore:   req.PassingScore,
		StartDate:      req.StartDate,
		Status:         req.Status,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrQuizNotFound) {
			writeError(w, http.StatusNotFound, KindNotFound, "quiz not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to update quiz")
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, payload.NewQuizResponse(quiz))
}

func (h *QuizHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.quizUsecase.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, usecase.ErrQuizNotFound) {
			writeError(w, http.StatusNotFound, KindNotFound, "quiz not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to delete quiz")
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "quiz deleted successfully"})
}

func (h *QuizHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.quizUsecase.Stats(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to fetch dashboard stats")
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *QuizHandler) Seed(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.quizUsecase.Seed(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to seed catalog")
		writeUsecaseError(w, err)
		return
	}

	message := "database already seeded"
	if seeded {
		message = "database seeded successfully"
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}
