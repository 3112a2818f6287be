package strategy

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"strategy-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the strategy service.
type Handler struct {
	Svc *Service
	// StrategyPath serves the currently persisted strategy document. Empty
	// when the sink is not file-backed.
	StrategyPath string
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, strategyPath string) *Handler {
	return &Handler{Svc: svc, StrategyPath: strategyPath}
}

// RegisterRoutes attaches strategy routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/runs", h.startRun)
	rg.GET("/runs", h.listRuns)
	rg.GET("/runs/:id", h.getRun)
	rg.GET("/strategy", h.getStrategy)
}

// startRun triggers a compose run synchronously. A degraded run is still a
// 201; only run-history persistence surfaces as an error.
func (h *Handler) startRun(c *gin.Context) {
	run, err := h.Svc.Compose(c.Request.Context())
	if run.ID != "" {
		c.Set("runId", run.ID)
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record compose run", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, run)
}

func (h *Handler) getRun(c *gin.Context) {
	runID := c.Param("id")
	if runID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "run id is required", nil)
		return
	}

	run, err := h.Svc.Repo.GetByID(c.Request.Context(), runID)
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "run not found", nil)
	case err != nil:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load run", nil)
	default:
		respond.OK(c, run)
	}
}

func (h *Handler) listRuns(c *gin.Context) {
	limit := parseIntDefault(c.Query("limit"), 20)
	offset := parseIntDefault(c.Query("offset"), 0)

	runs, err := h.Svc.Repo.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list runs", nil)
		return
	}
	respond.OK(c, gin.H{"runs": runs})
}

// getStrategy returns the currently persisted strategy document.
func (h *Handler) getStrategy(c *gin.Context) {
	if h.StrategyPath == "" {
		respond.Error(c, http.StatusNotFound, "not_found", "strategy file is not served by this sink", nil)
		return
	}
	raw, err := os.ReadFile(h.StrategyPath)
	if err != nil {
		if os.IsNotExist(err) {
			respond.Error(c, http.StatusNotFound, "not_found", "no strategy has been composed yet", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read strategy", nil)
		return
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "strategy file is corrupt", nil)
		return
	}
	respond.OK(c, doc)
}

func parseIntDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return def
	}
	return val
}
