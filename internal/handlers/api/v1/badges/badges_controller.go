// file: internal/handlers/api/v1/badges/badges_controller.go
package badges

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"badgehub/internal/cache"
	"badgehub/internal/models"
	"badgehub/internal/response"
	"badgehub/internal/services"
)

// Query types accepted on GET.
const (
	QueryUserBadges     = "user_badges"
	QueryUserProgress   = "user_progress"
	QueryCheckBadges    = "check_badges"
	QueryAllDefinitions = "all_definitions"
)

// Actions accepted on POST.
const (
	ActionUpdateProgress = "update_progress"
	ActionCheckBadges    = "check_badges"
)

const definitionsCacheKey = "badges:definitions"

// BadgeController handles the /api/v1/badges endpoint.
type BadgeController struct {
	service  services.BadgeService
	cache    cache.Cache
	logger   *zap.Logger
	response *response.Builder
}

// NewBadgeController creates the badge controller.
func NewBadgeController(service services.BadgeService, store cache.Cache, builder *response.Builder, logger *zap.Logger) *BadgeController {
	return &BadgeController{
		service:  service,
		cache:    store,
		logger:   logger,
		response: builder,
	}
}

// HandleBadges dispatches by HTTP method.
func (c *BadgeController) HandleBadges(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.handleGet(w, r)
	case http.MethodPost:
		c.handlePost(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		c.response.WriteError(w, r, &services.ServiceError{
			Type:       services.ErrorTypeValidation,
			Message:    "method not allowed",
			Code:       "METHOD_NOT_ALLOWED",
			StatusCode: http.StatusMethodNotAllowed,
		})
	}
}

// ===============================
// GET QUERIES
// ===============================

func (c *BadgeController) handleGet(w http.ResponseWriter, r *http.Request) {
	queryType := r.URL.Query().Get("type")
	if queryType == "" {
		queryType = QueryAllDefinitions
	}

	if queryType == QueryAllDefinitions {
		c.writeDefinitions(w, r)
		return
	}

	userID, err := parseUserID(r.URL.Query().Get("user_id"))
	if err != nil {
		c.response.WriteError(w, r, err)
		return
	}

	switch queryType {
	case QueryUserBadges:
		badges, err := c.service.GetUserBadges(r.Context(), userID)
		if err != nil {
			c.response.WriteError(w, r, err)
			return
		}
		c.response.WriteSuccess(w, r, map[string]interface{}{
			"badges": badges,
			"count":  len(badges),
		})

	case QueryUserProgress:
		progress, err := c.service.GetUserProgress(r.Context(), userID)
		if err != nil {
			c.response.WriteError(w, r, err)
			return
		}
		c.response.WriteSuccess(w, r, progress)

	case QueryCheckBadges:
		awarded, err := c.service.CheckAndAward(r.Context(), userID)
		if err != nil {
			c.response.WriteError(w, r, err)
			return
		}
		c.response.WriteSuccess(w, r, map[string]interface{}{
			"newly_awarded": awarded,
			"count":         len(awarded),
		})

	default:
		c.response.WriteError(w, r, services.NewValidationError("unknown query type"))
	}
}

// writeDefinitions serves the catalog, cached because the definition
// set never changes within a process lifetime.
func (c *BadgeController) writeDefinitions(w http.ResponseWriter, r *http.Request) {
	var defs []models.BadgeDefinition
	if found, err := c.cache.Get(r.Context(), definitionsCacheKey, &defs); err == nil && found {
		c.response.WriteSuccess(w, r, map[string]interface{}{
			"definitions": defs,
			"count":       len(defs),
		})
		return
	}

	defs, err := c.service.ListDefinitions(r.Context())
	if err != nil {
		c.response.WriteError(w, r, err)
		return
	}

	if err := c.cache.Set(r.Context(), definitionsCacheKey, defs, time.Hour); err != nil {
		c.logger.Warn("Failed to cache badge definitions", zap.Error(err))
	}

	c.response.WriteSuccess(w, r, map[string]interface{}{
		"definitions": defs,
		"count":       len(defs),
	})
}

// ===============================
// POST ACTIONS
// ===============================

type postRequest struct {
	UserID int64           `json:"user_id"`
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type updateProgressPayload struct {
	Metric string `json:"metric"`
	Delta  int64  `json:"delta"`
}

func (c *BadgeController) handlePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.response.WriteError(w, r, services.NewValidationError("invalid request body"))
		return
	}

	if req.UserID <= 0 {
		c.response.WriteError(w, r, services.NewValidationError("user id is required"))
		return
	}

	switch req.Action {
	case ActionUpdateProgress:
		var payload updateProgressPayload
		if len(req.Data) > 0 {
			if err := json.Unmarshal(req.Data, &payload); err != nil {
				c.response.WriteError(w, r, services.NewValidationError("invalid update_progress payload"))
				return
			}
		}

		progress, err := c.service.UpdateProgress(r.Context(), &services.UpdateProgressRequest{
			UserID: req.UserID,
			Metric: payload.Metric,
			Delta:  payload.Delta,
		})
		if err != nil {
			c.response.WriteError(w, r, err)
			return
		}
		c.response.WriteSuccess(w, r, progress)

	case ActionCheckBadges:
		awarded, err := c.service.CheckAndAward(r.Context(), req.UserID)
		if err != nil {
			c.response.WriteError(w, r, err)
			return
		}
		c.response.WriteSuccess(w, r, map[string]interface{}{
			"newly_awarded": awarded,
			"count":         len(awarded),
		})

	default:
		c.response.WriteError(w, r, services.NewValidationError("invalid action"))
	}
}

func parseUserID(raw string) (int64, error) {
	if raw == "" {
		return 0, services.NewValidationError("user id is required")
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, services.NewValidationError("user id must be a positive integer")
	}
	return userID, nil
}
