package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aperrault/phraseur/internal/api/shared"
	"github.com/aperrault/phraseur/internal/platform/rediscache"
)

// CacheStatsProvider reports cache effectiveness counters.
// Implemented by rediscache.Cache.
type CacheStatsProvider interface {
	Stats(ctx context.Context) (rediscache.Stats, error)
}

// CacheHandler handles cache-introspection HTTP requests.
type CacheHandler struct {
	cache  CacheStatsProvider
	logger *slog.Logger
}

// NewCacheHandler creates a new CacheHandler. cache may be nil when the cache
// is disabled; stats requests then return 404.
func NewCacheHandler(cache CacheStatsProvider, logger *slog.Logger) *CacheHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &CacheHandler{
		cache:  cache,
		logger: logger.With(slog.String("component", "cache_handler")),
	}
}

// Stats handles GET /api/v1/cache/stats requests.
func (h *CacheHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Cache is disabled")
		return
	}

	stats, err := h.cache.Stats(r.Context())
	if err != nil {
		h.logger.Error("failed to read cache stats", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to read cache stats")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}
