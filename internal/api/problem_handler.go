package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/aperrault/phraseur/internal/api/shared"
	"github.com/aperrault/phraseur/internal/service"
)

// ProblemHandler handles practice-problem HTTP requests.
type ProblemHandler struct {
	problems  service.ProblemService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewProblemHandler creates a new ProblemHandler.
func NewProblemHandler(problems service.ProblemService, logger *slog.Logger) *ProblemHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &ProblemHandler{
		problems:  problems,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "problem_handler")),
	}
}

// Batch handles POST /api/v1/problems/batch requests. The whole batch runs
// synchronously; the response holds the problems that succeeded.
func (h *ProblemHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req BatchProblemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	sentences, err := h.problems.Batch(r.Context(), req.Workers, req.Quantity, req.toService())
	if err != nil {
		h.logger.Error("problem batch failed",
			"error", err,
			"workers", req.Workers,
			"quantity", req.Quantity)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to run problem batch")
		return
	}

	responses := make([]SentenceResponse, 0, len(sentences))
	for _, sentence := range sentences {
		responses = append(responses, sentenceToResponse(sentence))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}
