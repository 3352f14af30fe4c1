package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/assetid/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/assetid/internal/platform/id"
	"github.com/riskibarqy/assetid/internal/platform/logging"
	"github.com/riskibarqy/assetid/internal/usecase"
)

type envelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       T                `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	repo := memory.NewAssetRepository(memory.SeedAssets())
	generator := id.NewRandomGenerator(nil)
	handler := NewHandler(
		usecase.NewAssetService(repo, generator),
		usecase.NewIDService(generator, 16),
		2,
		logging.NewNop(),
	)
	return NewRouter(handler, logging.NewNop(), true, []string{"*"})
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var out envelope[T]
	if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response body: %v (%s)", err, rec.Body.String())
	}
	return out
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMintIDs(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/ids", `{"count":3}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope[mintIDsDTO](t, rec)
	if len(body.Data.IDs) != 3 {
		t.Fatalf("expected 3 ids, got %d", len(body.Data.IDs))
	}
	for _, v := range body.Data.IDs {
		if v.IsNull() {
			t.Fatalf("minted the null id")
		}
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/ids", `{"count":17}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 above max batch, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/ids", `{"count":2,"extra":true}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", rec.Code)
	}
}

func TestNormalizeIDs_MixedTokens(t *testing.T) {
	// The display form is for humans; it is not an accepted encoding.
	rec := doRequest(t, newTestRouter(t), http.MethodPost, "/v1/ids/normalize", `{"ids":["a12b345", "*ff"]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for display form in normalize, got %d", rec.Code)
	}

	rec = doRequest(t, newTestRouter(t), http.MethodPost, "/v1/ids/normalize", `{"ids":["a12b345", 12345, "75bc371"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope[normalizeIDsDTO](t, rec)

	want := []normalizedIDDTO{
		{Input: "a12b345", ID: id.FromRaw(0xa12b345), Display: "*a12b345"},
		{Input: "12345", ID: id.FromRaw(0x12345), Display: "*12345"},
		{Input: "75bc371", ID: id.FromRaw(123454321), Display: "*75bc371"},
	}
	if len(body.Data.Items) != len(want) {
		t.Fatalf("unexpected item count: %d", len(body.Data.Items))
	}
	for i := range want {
		if body.Data.Items[i] != want[i] {
			t.Fatalf("item %d: got %+v want %+v", i, body.Data.Items[i], want[i])
		}
	}
}

func TestNormalizeIDs_InvalidEncoding(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodPost, "/v1/ids/normalize", `{"ids":["ff", -42]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeEnvelope[any](t, rec)
	if body.Error == nil || len(body.Error.Errors) == 0 || body.Error.Errors[0].Reason != "invalidEncoding" {
		t.Fatalf("expected invalidEncoding reason, got %+v", body.Error)
	}
}

func TestAssetLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/assets", `{"name":"hero.glb","kind":"model"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeEnvelope[assetDTO](t, rec).Data
	if created.ID.IsNull() || created.Display != created.ID.String() {
		t.Fatalf("unexpected created asset: %+v", created)
	}

	for _, token := range []string{created.ID.Encode(), created.ID.String()} {
		rec = doRequest(t, router, http.MethodGet, "/v1/assets/"+token, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("get %s: expected 200, got %d", token, rec.Code)
		}
		if got := decodeEnvelope[assetDTO](t, rec).Data; got.ID != created.ID || got.Name != "hero.glb" {
			t.Fatalf("get %s: unexpected asset %+v", token, got)
		}
	}

	rec = doRequest(t, router, http.MethodDelete, "/v1/assets/"+created.ID.Encode(), "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec = doRequest(t, router, http.MethodDelete, "/v1/assets/"+created.ID.Encode(), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestCreateAsset_Validation(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodPost, "/v1/assets", `{"name":"","kind":"image"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetAsset_Errors(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/assets/zzz", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", rec.Code)
	}
	if body := decodeEnvelope[any](t, rec); body.Error.Errors[0].Reason != "invalidEncoding" {
		t.Fatalf("expected invalidEncoding, got %+v", body.Error)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/assets/dead", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/assets/"+memory.SeedAssetLogo.Encode(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for seed asset, got %d", rec.Code)
	}
}

func TestListAssets(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/assets?limit=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	items := decodeEnvelope[[]assetDTO](t, rec).Data
	if len(items) != 2 || items[0].ID != memory.SeedAssetLogo {
		t.Fatalf("unexpected items: %+v", items)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/assets?limit=abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad limit, got %d", rec.Code)
	}
}

func TestImportAssets_LegacyIDs(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/assets/import", `{"items":[
		{"id":75300,"name":"banner.png","kind":"image"},
		{"id":"beef","name":"sprite.png","kind":"image"},
		{"name":"fresh.png","kind":"image"}
	]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope[importAssetsDTO](t, rec).Data
	if body.CreatedCount != 2 || body.FailedCount != 1 {
		t.Fatalf("unexpected counts: %+v", body)
	}
	if body.Items[0].Status != "conflict" || body.Items[0].ID != memory.SeedAssetBanner {
		t.Fatalf("expected integer 75300 to collide with seed 0x75300, got %+v", body.Items[0])
	}
	if body.Items[1].Status != "created" || body.Items[1].ID != id.FromRaw(0xbeef) {
		t.Fatalf("unexpected second item: %+v", body.Items[1])
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/assets/beef", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected imported asset to be readable, got %d", rec.Code)
	}
}

func TestLookupAssets(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/assets/lookup", `{"ids":["a12b345", 12345, "dead", "12345"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope[lookupAssetsDTO](t, rec).Data
	if len(body.Items) != 2 {
		t.Fatalf("expected 2 assets after dedupe, got %+v", body.Items)
	}
	if body.Items[0].ID != memory.SeedAssetTexture || body.Items[1].ID != memory.SeedAssetLogo {
		t.Fatalf("expected request order, got %+v", body.Items)
	}
	if body.Items[1].Display != "*12345" {
		t.Fatalf("unexpected display form: %q", body.Items[1].Display)
	}
	if len(body.Missing) != 1 || body.Missing[0] != id.FromRaw(0xdead) {
		t.Fatalf("unexpected missing ids: %v", body.Missing)
	}
}

func TestLookupAssets_Errors(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/assets/lookup", `{"ids":["ff", "zzz"]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", rec.Code)
	}
	body := decodeEnvelope[any](t, rec)
	if body.Error == nil || len(body.Error.Errors) == 0 || body.Error.Errors[0].Reason != "invalidEncoding" {
		t.Fatalf("expected invalidEncoding reason, got %+v", body.Error)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/assets/lookup", `{"ids":["ff", 0]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for null id, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/assets/lookup", `{"ids":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty lookup, got %d", rec.Code)
	}
}

func TestRouter_SwaggerToggle(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/openapi.yaml", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected openapi document, got %d", rec.Code)
	}

	handler := NewHandler(nil, nil, 1, logging.NewNop())
	router := NewRouter(handler, logging.NewNop(), false, []string{"*"})
	rec = doRequest(t, router, http.MethodGet, "/openapi.yaml", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 with swagger disabled, got %d", rec.Code)
	}
}

func TestRecoverPanic(t *testing.T) {
	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/assets", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", rec.Code)
	}
}
