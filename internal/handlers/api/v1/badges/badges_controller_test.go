// file: internal/handlers/api/v1/badges/badges_controller_test.go
package badges

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"badgehub/internal/cache"
	"badgehub/internal/catalog"
	"badgehub/internal/events"
	"badgehub/internal/models"
	"badgehub/internal/repositories"
	"badgehub/internal/response"
	"badgehub/internal/services"
)

func newTestController(t *testing.T) *BadgeController {
	t.Helper()
	logger := zap.NewNop()

	cat, err := catalog.New([]models.BadgeDefinition{
		{
			ID:     "first_article",
			Name:   "First Steps",
			Rarity: models.RarityCommon,
			Points: 10,
			Criteria: []models.Condition{
				{Metric: "articles_published", Operator: models.OpGTE, Threshold: 1},
			},
		},
	})
	require.NoError(t, err)

	bus := events.NewMemoryBus(logger, 1, 16)
	bus.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = bus.Stop(ctx)
	})

	store := cache.NewMemoryCache(100, logger)
	t.Cleanup(func() { _ = store.Close() })

	service := services.NewBadgeService(
		cat,
		repositories.NewMemoryProgressRepository(),
		repositories.NewMemoryBadgeRepository(),
		bus,
		logger,
	)

	return NewBadgeController(service, store, response.NewBuilder(response.DefaultConfig(), logger), logger)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func postJSON(t *testing.T, c *BadgeController, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/badges", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c.HandleBadges(rec, req)
	return rec
}

func TestHandleBadges_GetDefinitionsByDefault(t *testing.T) {
	c := newTestController(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/badges", nil)
	rec := httptest.NewRecorder()
	c.HandleBadges(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])

	// Second request is served from cache with the same shape.
	rec = httptest.NewRecorder()
	c.HandleBadges(rec, httptest.NewRequest(http.MethodGet, "/api/v1/badges?type=all_definitions", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	data = decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])
}

func TestHandleBadges_GetRequiresUserID(t *testing.T) {
	c := newTestController(t)

	for _, queryType := range []string{QueryUserBadges, QueryUserProgress, QueryCheckBadges} {
		t.Run(queryType, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/badges?type="+queryType, nil)
			rec := httptest.NewRecorder()
			c.HandleBadges(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestHandleBadges_GetRejectsMalformedUserID(t *testing.T) {
	c := newTestController(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/badges?type=user_progress&user_id=abc", nil)
	rec := httptest.NewRecorder()
	c.HandleBadges(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleBadges_GetUnknownQueryType(t *testing.T) {
	c := newTestController(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/badges?type=bogus&user_id=1", nil)
	rec := httptest.NewRecorder()
	c.HandleBadges(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleBadges_GetUserProgressZeroState(t *testing.T) {
	c := newTestController(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/badges?type=user_progress&user_id=7", nil)
	rec := httptest.NewRecorder()
	c.HandleBadges(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	level := data["level"].(map[string]interface{})
	assert.Equal(t, float64(1), level["level"])
	assert.Equal(t, float64(100), level["points_to_next"])
}

func TestHandleBadges_UpdateProgressThenCheck(t *testing.T) {
	c := newTestController(t)

	rec := postJSON(t, c, `{"user_id":1,"action":"update_progress","data":{"metric":"articles_published","delta":1}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	metrics := data["metrics"].(map[string]interface{})
	assert.Equal(t, float64(1), metrics["articles_published"])

	rec = postJSON(t, c, `{"user_id":1,"action":"check_badges"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	data = decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])

	awarded := data["newly_awarded"].([]interface{})
	first := awarded[0].(map[string]interface{})
	assert.Equal(t, "first_article", first["id"])

	// Awards now show up on the GET query, and a re-check is empty.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/badges?type=user_badges&user_id=1", nil)
	getRec := httptest.NewRecorder()
	c.HandleBadges(getRec, req)
	assert.Equal(t, http.StatusOK, getRec.Code)
	data = decodeBody(t, getRec)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])

	rec = postJSON(t, c, `{"user_id":1,"action":"check_badges"}`)
	data = decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["count"])
}

func TestHandleBadges_PostInvalidAction(t *testing.T) {
	c := newTestController(t)

	rec := postJSON(t, c, `{"user_id":1,"action":"delete_badges"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	errDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errDetail["type"])
}

func TestHandleBadges_PostRequiresUserID(t *testing.T) {
	c := newTestController(t)

	rec := postJSON(t, c, `{"action":"check_badges"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleBadges_PostMalformedBody(t *testing.T) {
	c := newTestController(t)

	rec := postJSON(t, c, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleBadges_PostUpdateProgressValidation(t *testing.T) {
	c := newTestController(t)

	// Missing metric in the payload.
	rec := postJSON(t, c, `{"user_id":1,"action":"update_progress","data":{"delta":1}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleBadges_MethodNotAllowed(t *testing.T) {
	c := newTestController(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/badges", nil)
	rec := httptest.NewRecorder()
	c.HandleBadges(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))
}
