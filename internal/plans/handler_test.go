package plans_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
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

func TestPlansCreateAndList(t *testing.T) {
	router := newTestRouter(t)

	body := `{"name":"Pro","includedSeats":5}`
	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		IncludedSeats int    `json:"includedSeats"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID == "" || created.Name != "Pro" || created.IncludedSeats != 5 {
		t.Fatalf("unexpected plan: %+v", created)
	}

	reqList := httptest.NewRequest(http.MethodGet, "/plans", nil)
	respList := httptest.NewRecorder()
	router.ServeHTTP(respList, reqList)

	if respList.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respList.Code)
	}
	var listed []struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 1 || listed[0].Name != "Pro" {
		t.Fatalf("expected one plan named Pro, got %+v", listed)
	}
}

func TestPlansCreateDuplicateNameConflicts(t *testing.T) {
	router := newTestRouter(t)

	for i, want := range []int{http.StatusCreated, http.StatusConflict} {
		req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(`{"name":"Base"}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != want {
			t.Fatalf("request %d expected %d, got %d", i+1, want, resp.Code)
		}
	}
}

func TestPlansCreateRequiresName(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(`{"includedSeats":3}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
