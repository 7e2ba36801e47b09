package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aperrault/phraseur/internal/api/shared"
	"github.com/aperrault/phraseur/internal/composer"
	"github.com/aperrault/phraseur/internal/service"
	"github.com/aperrault/phraseur/internal/store"
)

// VerbHandler handles verb-related HTTP requests.
type VerbHandler struct {
	verbs  service.VerbService
	logger *slog.Logger
}

// NewVerbHandler creates a new VerbHandler.
func NewVerbHandler(verbs service.VerbService, logger *slog.Logger) *VerbHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &VerbHandler{
		verbs:  verbs,
		logger: logger.With(slog.String("component", "verb_handler")),
	}
}

// Get handles GET /api/v1/verbs/{infinitive} requests.
func (h *VerbHandler) Get(w http.ResponseWriter, r *http.Request) {
	infinitive := chi.URLParam(r, "infinitive")

	verb, err := h.verbs.Get(r.Context(), infinitive)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Verb not found")
			return
		}
		h.logger.Error("failed to get verb", "error", err, "infinitive", infinitive)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to get verb")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, verbToResponse(verb))
}

// Random handles GET /api/v1/verbs/random requests.
func (h *VerbHandler) Random(w http.ResponseWriter, r *http.Request) {
	verb, err := h.verbs.Random(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrEmptyStore) {
			shared.RespondWithError(w, r, http.StatusNotFound, "No verbs stored yet")
			return
		}
		h.logger.Error("failed to get random verb", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to get random verb")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, verbToResponse(verb))
}

// Download handles POST /api/v1/verbs/{infinitive}/download requests.
// The model call is performed synchronously; clients should expect latency.
func (h *VerbHandler) Download(w http.ResponseWriter, r *http.Request) {
	infinitive := chi.URLParam(r, "infinitive")

	verb, err := h.verbs.Download(r.Context(), infinitive)
	if err != nil {
		h.logger.Error("failed to download verb", "error", err, "infinitive", infinitive)
		if errors.Is(err, composer.ErrMalformedReply) {
			shared.RespondWithError(w, r, http.StatusBadGateway, "Model reply could not be parsed")
			return
		}
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to download verb")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, verbToResponse(verb))
}
