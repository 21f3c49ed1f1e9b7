package recommend

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"beautips-backend/internal/catalog"
)

func setupRecommendRouter(t *testing.T, client *stubLLM, products ...catalog.Product) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := newTestService(t, client, products...)
	router := gin.New()
	NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestGenerateRecommendationsEndpoint(t *testing.T) {
	client := &stubLLM{response: `{"analysis": "Plan.", "products": [{"name": "Oily serum"}]}`}
	router := setupRecommendRouter(t, client,
		catalog.Product{Name: "Oily serum", PriceMax: 500, SkinFor: "oily"},
	)

	body, err := json.Marshal(questionnaire())
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quiz/recommendations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var got map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got["analysis"] != "Plan." {
		t.Errorf("analysis = %v", got["analysis"])
	}
}

func TestGenerateRecommendationsEndpointDegradedStill200(t *testing.T) {
	client := &stubLLM{response: "prose, not JSON"}
	router := setupRecommendRouter(t, client,
		catalog.Product{Name: "Oily serum", PriceMax: 500},
	)

	body, _ := json.Marshal(questionnaire())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quiz/recommendations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for degraded response, got %d", resp.Code)
	}

	var got map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got["error"] != "JSON parsing error" {
		t.Errorf("error = %v", got["error"])
	}
}

func TestGenerateRecommendationsEndpointBadBody(t *testing.T) {
	router := setupRecommendRouter(t, &stubLLM{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quiz/recommendations", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestRebuildIndexEndpoint(t *testing.T) {
	router := setupRecommendRouter(t, &stubLLM{},
		catalog.Product{Name: "Oily serum", PriceMax: 500},
		catalog.Product{Name: "Dry cream", PriceMax: 800},
	)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reindex", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var got struct {
		IndexedProducts int `json:"indexedProducts"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.IndexedProducts != 2 {
		t.Fatalf("indexedProducts = %d, want 2", got.IndexedProducts)
	}
}
