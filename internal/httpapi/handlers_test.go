package httpapi

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"vitrina.org/internal/account"
	"vitrina.org/internal/analytics"
	"vitrina.org/internal/catalog"
	"vitrina.org/internal/store"
)

type apiClient struct {
	baseURL string
	client  *http.Client
	t       *testing.T
}

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()

	t.Setenv("VITRINA_AUTH_SECRET", "test-secret")
	account.ResetSecretForTests()

	st := store.New(store.NewMemKV())
	eng := analytics.NewEngine(analytics.WithRand(rand.New(rand.NewSource(1))))
	api := New(ReadyProbe{}, "test", account.NewService(st), catalog.NewService(st), eng)
	api.rateBurst = 100
	api.ratePerSec = 100

	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)

	return &apiClient{
		baseURL: srv.URL,
		client:  srv.Client(),
		t:       t,
	}
}

func (c *apiClient) do(method, path string, body any, headers map[string]string) *http.Response {
	c.t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			c.t.Fatalf("marshal body: %v", err)
		}
	}
	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		c.t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		c.t.Fatalf("do request: %v", err)
	}
	return resp
}

func (c *apiClient) post(path string, body any, headers map[string]string) *http.Response {
	return c.do(http.MethodPost, path, body, headers)
}

func (c *apiClient) get(path string, params url.Values, headers map[string]string) *http.Response {
	c.t.Helper()
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		c.t.Fatalf("parse url: %v", err)
	}
	if params != nil {
		u.RawQuery = params.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		c.t.Fatalf("new request: %v", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		c.t.Fatalf("get request: %v", err)
	}
	return resp
}

func (c *apiClient) signIn(email, password string) (string, map[string]string) {
	c.t.Helper()
	resp := c.post("/v1/auth/signin", map[string]any{
		"email":    email,
		"password": password,
	}, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.t.Fatalf("unexpected signin status: %d", resp.StatusCode)
	}
	var payload sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.t.Fatalf("decode signin response: %v", err)
	}
	if payload.Token == "" {
		c.t.Fatalf("empty token issued")
	}
	return payload.Token, map[string]string{"Authorization": "Bearer " + payload.Token}
}

func decode[T any](t *testing.T, r *http.Response) T {
	t.Helper()
	defer r.Body.Close()
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHealthz(t *testing.T) {
	api := newTestAPI(t)
	resp := api.get("/healthz", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	body := decode[map[string]any](t, resp)
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestSignInIssuesTokenWithoutCredential(t *testing.T) {
	api := newTestAPI(t)
	resp := api.post("/v1/auth/signin", map[string]any{
		"email":    "admin@ecommerce.com",
		"password": "admin123",
	}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	body := decode[map[string]any](t, resp)
	acc, ok := body["account"].(map[string]any)
	if !ok {
		t.Fatalf("missing account in response: %v", body)
	}
	if acc["email"] != "admin@ecommerce.com" {
		t.Fatalf("unexpected email: %v", acc["email"])
	}
	if acc["role"] != store.RoleSuperAdmin {
		t.Fatalf("unexpected role: %v", acc["role"])
	}
	if _, leaked := acc["password"]; leaked {
		t.Fatal("password must not appear in the response")
	}
}

func TestSignInRejectsWrongPassword(t *testing.T) {
	api := newTestAPI(t)
	resp := api.post("/v1/auth/signin", map[string]any{
		"email":    "admin@ecommerce.com",
		"password": "nope",
	}, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestSignUpThenProfile(t *testing.T) {
	api := newTestAPI(t)
	resp := api.post("/v1/auth/signup", map[string]any{
		"email":    "new@vitrina.org",
		"password": "secret",
		"name":     "New Admin",
	}, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	created := decode[sessionResponse](t, resp)
	if created.Account.Role != store.RoleAdmin {
		t.Fatalf("unexpected role: %q", created.Account.Role)
	}

	headers := map[string]string{"Authorization": "Bearer " + created.Token}
	resp = api.get("/v1/profile", nil, headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	profile := decode[accountResponse](t, resp)
	if profile.Email != "new@vitrina.org" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	api := newTestAPI(t)
	resp := api.post("/v1/auth/signup", map[string]any{
		"email":    "admin@ecommerce.com",
		"password": "x",
		"name":     "Imposter",
	}, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestProductCRUDFlow(t *testing.T) {
	api := newTestAPI(t)
	_, headers := api.signIn("admin@ecommerce.com", "admin123")

	resp := api.post("/v1/products", map[string]any{
		"name":     "Standing Desk",
		"category": "Home",
		"price":    "499.00",
		"stock":    "15",
	}, headers)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if resp.Header.Get("Location") == "" {
		t.Fatal("expected Location header")
	}
	created := decode[store.Product](t, resp)
	if created.ID == "" || created.Sales != 0 {
		t.Fatalf("unexpected product: %+v", created)
	}
	if created.Rating != store.DefaultRating || created.Reviews != store.DefaultReviews {
		t.Fatalf("defaults not applied: %+v", created)
	}

	resp = api.get("/v1/products/"+created.ID, nil, headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	resp = api.do(http.MethodPut, "/v1/products/"+created.ID, map[string]any{
		"name":     "Standing Desk Pro",
		"category": "Home",
		"price":    "549.00",
		"stock":    "12",
	}, headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	updated := decode[store.Product](t, resp)
	if updated.ID != created.ID {
		t.Fatalf("id changed on update: %q -> %q", created.ID, updated.ID)
	}
	if updated.Sales != created.Sales {
		t.Fatalf("sales changed on update: %d -> %d", created.Sales, updated.Sales)
	}
	if updated.Name != "Standing Desk Pro" {
		t.Fatalf("unexpected name: %q", updated.Name)
	}

	resp = api.do(http.MethodDelete, "/v1/products/"+created.ID, nil, headers)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = api.get("/v1/products/"+created.ID, nil, headers)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.StatusCode)
	}
}

func TestProductValidationErrors(t *testing.T) {
	api := newTestAPI(t)
	_, headers := api.signIn("admin@ecommerce.com", "admin123")

	resp := api.post("/v1/products", map[string]any{
		"name":     "",
		"category": "Home",
		"price":    "free",
		"stock":    "10",
	}, headers)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := decode[map[string]any](t, resp)
	fields, ok := body["fields"].(map[string]any)
	if !ok {
		t.Fatalf("expected fields map: %v", body)
	}
	if fields["name"] == "" || fields["price"] == "" {
		t.Fatalf("expected name and price errors: %v", fields)
	}
}

func TestProductListFiltering(t *testing.T) {
	api := newTestAPI(t)
	_, headers := api.signIn("admin@ecommerce.com", "admin123")

	resp := api.get("/v1/products", url.Values{"category": []string{"Electronics"}}, headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	payload := decode[productListResponse](t, resp)
	if payload.Total == 0 {
		t.Fatal("expected seeded electronics products")
	}
	for _, p := range payload.Items {
		if p.Category != "Electronics" {
			t.Fatalf("filter leaked category %q", p.Category)
		}
	}
}

func TestAnalyticsReport(t *testing.T) {
	api := newTestAPI(t)
	_, headers := api.signIn("admin@ecommerce.com", "admin123")

	listResp := api.get("/v1/products", nil, headers)
	catalogSize := decode[productListResponse](t, listResp).Total

	resp := api.get("/v1/analytics", nil, headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	report := decode[analytics.Report](t, resp)

	clustered := len(report.Clusters.High) + len(report.Clusters.Medium) + len(report.Clusters.Low)
	if clustered != catalogSize {
		t.Fatalf("clusters cover %d products, catalog has %d", clustered, catalogSize)
	}
	if len(report.Forecast) == 0 || len(report.Elasticity) == 0 ||
		len(report.CLV) == 0 || len(report.Churn) == 0 || len(report.Sentiment) == 0 {
		t.Fatalf("incomplete report: %+v", report)
	}
}

func TestStatsEndpoint(t *testing.T) {
	api := newTestAPI(t)
	_, headers := api.signIn("admin@ecommerce.com", "admin123")

	resp := api.get("/v1/stats", nil, headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	stats := decode[statsResponse](t, resp)
	if stats.Overview.TotalProducts == 0 {
		t.Fatal("expected seeded catalog in overview")
	}
	if len(stats.Categories) == 0 || len(stats.Sales) == 0 {
		t.Fatalf("incomplete stats: %+v", stats)
	}
}

func TestAPIEnforcesAuth(t *testing.T) {
	api := newTestAPI(t)

	resp := api.get("/v1/products", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	var errBody map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if errBody["error"] == "" {
		t.Fatalf("expected error message")
	}
}

func TestSignInValidation(t *testing.T) {
	api := newTestAPI(t)

	resp := api.post("/v1/auth/signin", nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
