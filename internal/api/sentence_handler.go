package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/aperrault/phraseur/internal/api/shared"
	"github.com/aperrault/phraseur/internal/composer"
	"github.com/aperrault/phraseur/internal/service"
	"github.com/aperrault/phraseur/internal/store"
)

// SentenceHandler handles sentence-related HTTP requests.
type SentenceHandler struct {
	sentences service.SentenceService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewSentenceHandler creates a new SentenceHandler.
func NewSentenceHandler(sentences service.SentenceService, logger *slog.Logger) *SentenceHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &SentenceHandler{
		sentences: sentences,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "sentence_handler")),
	}
}

// Generate handles POST /api/v1/sentences requests.
func (h *SentenceHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateSentenceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	sentence, err := h.sentences.Generate(r.Context(), req.toService())
	if err != nil {
		h.logger.Error("failed to generate sentence",
			"error", err,
			"infinitive", req.Infinitive)
		if errors.Is(err, composer.ErrMalformedReply) {
			shared.RespondWithError(w, r, http.StatusBadGateway, "Model reply could not be parsed")
			return
		}
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate sentence")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, sentenceToResponse(sentence))
}

// Get handles GET /api/v1/sentences/{id} requests.
func (h *SentenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid sentence ID")
		return
	}

	sentence, err := h.sentences.Get(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Sentence not found")
			return
		}
		h.logger.Error("failed to get sentence", "error", err, "sentence_id", id)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to get sentence")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sentenceToResponse(sentence))
}

// Random handles GET /api/v1/sentences/random requests.
func (h *SentenceHandler) Random(w http.ResponseWriter, r *http.Request) {
	sentence, err := h.sentences.Random(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrEmptyStore) {
			shared.RespondWithError(w, r, http.StatusNotFound, "No sentences stored yet")
			return
		}
		h.logger.Error("failed to get random sentence", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to get random sentence")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sentenceToResponse(sentence))
}

// List handles GET /api/v1/sentences requests.
func (h *SentenceHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	sentences, err := h.sentences.List(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("failed to list sentences", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list sentences")
		return
	}

	responses := make([]SentenceResponse, 0, len(sentences))
	for _, sentence := range sentences {
		responses = append(responses, sentenceToResponse(sentence))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}
