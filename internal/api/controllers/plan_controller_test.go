package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bxttttt/AI-TravelPlanner/internal/config"
	"github.com/bxttttt/AI-TravelPlanner/internal/models/response_models"
	"github.com/bxttttt/AI-TravelPlanner/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := services.NewKnowledgeStore(services.BuiltinCatalog())
	planner := services.NewOrchestratorService(store, services.NewBudgetService(store), services.NewItineraryService(), nil, config.ModeTemplate, zerolog.Nop())
	ctrl := NewPlanController(planner, zerolog.Nop())

	r := gin.New()
	r.POST("/api/trips/plan", ctrl.GeneratePlanHandler)
	r.GET("/api/destinations/:name", ctrl.GetDestinationHandler)
	r.GET("/healthz", ctrl.HealthHandler)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestGeneratePlanHandler_Success(t *testing.T) {
	r := setupRouter()

	w, env := doRequest(r, http.MethodPost, "/api/trips/plan", `{
		"destination": "首尔",
		"startDate": "2025-10-21",
		"endDate": "2025-10-23",
		"budget": 300000,
		"travelers": 2,
		"preferences": "美食、购物"
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", env.Status)

	var plan response_models.PlanResponse
	require.NoError(t, json.Unmarshal(env.Data, &plan))
	assert.Len(t, plan.Itinerary, 3)
	assert.Equal(t, "KRW", plan.BudgetSummary.Currency)
	assert.Equal(t, response_models.StatusGenerated, plan.Status)

	// wire keys
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &raw))
	assert.Contains(t, raw, "budgetSummary")
	day := raw["itinerary"].([]interface{})[0].(map[string]interface{})
	assert.Contains(t, day, "dayTitle")
	assert.Contains(t, day, "dailyBudget")
}

func TestGeneratePlanHandler_BadRequests(t *testing.T) {
	r := setupRouter()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"destination": `},
		{"missing destination", `{"startDate": "2025-10-21", "endDate": "2025-10-23"}`},
		{"end before start", `{"destination": "Seoul", "startDate": "2025-10-23", "endDate": "2025-10-21"}`},
		{"negative travelers", `{"destination": "Seoul", "startDate": "2025-10-21", "endDate": "2025-10-21", "travelers": -2}`},
		{"bad date", `{"destination": "Seoul", "startDate": "tomorrow", "endDate": "2025-10-21"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doRequest(r, http.MethodPost, "/api/trips/plan", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "error", env.Status)
		})
	}
}

func TestGetDestinationHandler(t *testing.T) {
	r := setupRouter()

	w, env := doRequest(r, http.MethodGet, "/api/destinations/paris", "")
	require.Equal(t, http.StatusOK, w.Code)
	var profile response_models.DestinationProfileResponse
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "EUR", profile.Currency)

	w, _ = doRequest(r, http.MethodGet, "/api/destinations/atlantis", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthHandler(t *testing.T) {
	w, env := doRequest(setupRouter(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"mode": "template"}`, string(env.Data))
}
