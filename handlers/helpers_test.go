package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"food-donation-api/config"
	"food-donation-api/routes"

	"github.com/gin-gonic/gin"
)

// setupRouter wires a fresh router against in-memory stores. Both databases
// are rebuilt per test so cases stay independent.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.InitDBAt(":memory:", ":memory:")
	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// registerAccount registers a user through the API and returns its token.
func registerAccount(t *testing.T, r *gin.Engine, name, email, phone, role string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"name":              name,
		"email":             email,
		"password":          "secret123",
		"role":              role,
		"phone":             phone,
		"address":           "12 Hill Road",
		"organization_name": name + " Org",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s failed: %d %s", email, w.Code, w.Body.String())
	}
	token, _ := decodeBody(t, w)["token"].(string)
	if token == "" {
		t.Fatalf("register %s returned no token", email)
	}
	return token
}

// submitDonation submits a donation as the given hotel and returns the recorder.
func submitDonation(t *testing.T, r *gin.Engine, hotelToken, docID, phone, foodName string) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, r, http.MethodPost, "/api/hotel/donations", hotelToken, map[string]interface{}{
		"food_name":       foodName,
		"quantity":        "10 meals",
		"document_path":   "/tmp/food-test-report.pdf",
		"document_id":     docID,
		"orphanage_phone": phone,
		"hotel_address":   "1 Main Street",
		"donation_date":   "2024-05-01",
	})
}
