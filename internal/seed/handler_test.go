package seed_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/McFranco99/ToolHR/internal/bootstrap"
	"github.com/McFranco99/ToolHR/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{Port: "0", Env: "dev"})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func applySeed(t *testing.T, router *gin.Engine) (companyID, plan string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/seed", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var out struct {
		CompanyID string `json:"companyId"`
		Plan      string `json:"plan"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode seed response: %v", err)
	}
	return out.CompanyID, out.Plan
}

func TestSeedIsIdempotent(t *testing.T) {
	router := newTestRouter(t)

	firstID, firstPlan := applySeed(t, router)
	if firstID == "" || firstPlan != "Base" {
		t.Fatalf("unexpected seed result: id=%q plan=%q", firstID, firstPlan)
	}

	secondID, _ := applySeed(t, router)
	if secondID != firstID {
		t.Fatalf("expected the same company on reseed, got %q then %q", firstID, secondID)
	}

	// The fixture company is visible through the regular API.
	req := httptest.NewRequest(http.MethodGet, "/companies/"+firstID, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var detail struct {
		Company struct {
			Name string `json:"name"`
		} `json:"company"`
		Subscription *struct {
			SeatsTotal int `json:"seatsTotal"`
		} `json:"subscription"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	if detail.Company.Name != "Demo Srl" || detail.Subscription == nil || detail.Subscription.SeatsTotal != 3 {
		t.Fatalf("unexpected fixture: %+v", detail)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body map[string]bool
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if !body["ok"] {
		t.Fatalf("expected ok=true, got %v", body)
	}
}
