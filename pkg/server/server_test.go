package server

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/avulnerador/RogueMap-Gen/pkg/document"
	"github.com/avulnerador/RogueMap-Gen/pkg/editor"
	"github.com/avulnerador/RogueMap-Gen/pkg/errors"
	"github.com/avulnerador/RogueMap-Gen/pkg/layout"
	"github.com/avulnerador/RogueMap-Gen/pkg/rng"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
	"github.com/avulnerador/RogueMap-Gen/pkg/store"
)

const smallConfig = `{"numRows": 6, "minNodesPerRow": 2, "maxNodesPerRow": 3, "bossRow": 3}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	srv := New(editor.New(rng.New(7), logger), store.NewMemoryStore(), nil, logger)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, ts *httptest.Server, method, path, body string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.URL+path, rd)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeResp[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func expectStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("%s %s: status = %d, want %d\n%s", resp.Request.Method, resp.Request.URL.Path, resp.StatusCode, want, body)
	}
}

func expectCode(t *testing.T, resp *http.Response, status int, code errors.Code) {
	t.Helper()
	expectStatus(t, resp, status)
	body := decodeResp[errorBody](t, resp)
	if body.Code != code {
		t.Errorf("code = %s, want %s (%s)", body.Code, code, body.Message)
	}
}

func create(t *testing.T, ts *httptest.Server) (string, document.Document) {
	t.Helper()
	resp := do(t, ts, http.MethodPost, "/api/maps", smallConfig)
	expectStatus(t, resp, http.StatusCreated)
	out := decodeResp[createResponse](t, resp)
	return out.ID, out.Document
}

// interiorNode returns the first node of floor 1.
func interiorNode(d document.Document) runmap.Node {
	return d.MapNodes[1][0]
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	expectStatus(t, do(t, ts, http.MethodGet, "/healthz", ""), http.StatusOK)
}

func TestCreateAndGet(t *testing.T) {
	ts := newTestServer(t)
	id, d := create(t, ts)

	if len(d.MapNodes) != 7 {
		t.Fatalf("floors = %d, want 7", len(d.MapNodes))
	}
	if err := d.Map().Validate(); err != nil {
		t.Fatalf("created map invalid: %v", err)
	}

	resp := do(t, ts, http.MethodGet, "/api/maps/"+id, "")
	expectStatus(t, resp, http.StatusOK)
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/maps/"+id, nil)
	req.Header.Set("If-None-Match", etag)
	cached, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer cached.Body.Close()
	if cached.StatusCode != http.StatusNotModified {
		t.Errorf("conditional GET status = %d, want 304", cached.StatusCode)
	}

	ids := decodeResp[[]string](t, do(t, ts, http.MethodGet, "/api/maps", ""))
	if len(ids) != 1 || ids[0] != id {
		t.Errorf("list = %v, want [%s]", ids, id)
	}
}

func TestCreateDefaults(t *testing.T) {
	ts := newTestServer(t)
	resp := do(t, ts, http.MethodPost, "/api/maps", "")
	expectStatus(t, resp, http.StatusCreated)
	out := decodeResp[createResponse](t, resp)
	if got, want := len(out.Document.MapNodes), out.Document.MapConfig.NumRows+1; got != want {
		t.Errorf("floors = %d, want %d", got, want)
	}
}

func TestCreateRejects(t *testing.T) {
	ts := newTestServer(t)
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"out of range", `{"numRows": 99}`, errors.ErrCodeInvalidConfig},
		{"unknown field", `{"rows": 5}`, errors.ErrCodeInvalidInput},
		{"syntax", `{`, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectCode(t, do(t, ts, http.MethodPost, "/api/maps", tt.body), http.StatusBadRequest, tt.code)
		})
	}
}

func TestNotFound(t *testing.T) {
	ts := newTestServer(t)
	expectCode(t, do(t, ts, http.MethodGet, "/api/maps/missing", ""), http.StatusNotFound, errors.ErrCodeMapNotFound)
	expectCode(t, do(t, ts, http.MethodPost, "/api/maps/missing/generate", ""), http.StatusNotFound, errors.ErrCodeMapNotFound)

	id, _ := create(t, ts)
	expectCode(t, do(t, ts, http.MethodPost, "/api/maps/"+id+"/nodes/9999/promote", ""), http.StatusNotFound, errors.ErrCodeNodeNotFound)
	expectCode(t, do(t, ts, http.MethodPost, "/api/maps/"+id+"/nodes/abc/promote", ""), http.StatusBadRequest, errors.ErrCodeInvalidInput)
}

func TestLockSurvivesGenerate(t *testing.T) {
	ts := newTestServer(t)
	id, d := create(t, ts)
	n := interiorNode(d)
	path := "/api/maps/" + id

	expectStatus(t, do(t, ts, http.MethodPut, path+"/nodes/"+strconv.Itoa(n.ID)+"/lock", `{"locked": true}`), http.StatusOK)

	resp := do(t, ts, http.MethodPost, path+"/generate", "")
	expectStatus(t, resp, http.StatusOK)
	got := decodeResp[document.Document](t, resp).Map()

	kept, ok := got.Node(n.ID)
	if !ok {
		t.Fatalf("locked node %d lost on regenerate", n.ID)
	}
	if !kept.IsLocked || kept.Type != n.Type || kept.Row != n.Row {
		t.Errorf("locked node changed: %+v -> %+v", n, kept)
	}
}

func TestDragClamped(t *testing.T) {
	ts := newTestServer(t)
	id, d := create(t, ts)
	n := interiorNode(d)

	resp := do(t, ts, http.MethodPost, "/api/maps/"+id+"/nodes/"+strconv.Itoa(n.ID)+"/drag", `{"dx": 1000, "dy": 0}`)
	expectStatus(t, resp, http.StatusOK)
	moved, _ := decodeResp[document.Document](t, resp).Map().Node(n.ID)
	if math.Abs(moved.ManualOffsetX-layout.MaxOffsetRadius) > 1e-9 || moved.ManualOffsetY != 0 {
		t.Errorf("offset = %v, want %v", moved.ManualOffsetX, layout.MaxOffsetRadius)
	}
}

func TestPromoteAndDelete(t *testing.T) {
	ts := newTestServer(t)
	id, d := create(t, ts)
	path := "/api/maps/" + id

	start := d.MapNodes[0][0]
	expectCode(t, do(t, ts, http.MethodPost, path+"/nodes/"+strconv.Itoa(start.ID)+"/promote", ""), http.StatusBadRequest, errors.ErrCodeInvalidInput)
	expectCode(t, do(t, ts, http.MethodDelete, path+"/nodes/"+strconv.Itoa(start.ID), ""), http.StatusBadRequest, errors.ErrCodeInvalidInput)

	n := interiorNode(d)
	resp := do(t, ts, http.MethodPost, path+"/nodes/"+strconv.Itoa(n.ID)+"/promote", "")
	expectStatus(t, resp, http.StatusOK)
	m := decodeResp[document.Document](t, resp).Map()
	if len(m.Floors[1]) != 1 || !m.Floors[1][0].IsMiniBoss() {
		t.Errorf("floor 1 after promote = %+v", m.Floors[1])
	}
	if err := m.Validate(); err != nil {
		t.Errorf("promoted map invalid: %v", err)
	}
}

func TestConfigPatch(t *testing.T) {
	ts := newTestServer(t)
	id, _ := create(t, ts)

	resp := do(t, ts, http.MethodPut, "/api/maps/"+id+"/config", `{"hasIntermediateBoss": false}`)
	expectStatus(t, resp, http.StatusOK)
	d := decodeResp[document.Document](t, resp)

	if d.MapConfig.HasIntermediateBoss {
		t.Error("patch not applied")
	}
	if d.MapConfig.NumRows != 6 {
		t.Errorf("numRows = %d, patch should keep untouched fields", d.MapConfig.NumRows)
	}
	if floors := d.Map().MiniBossFloors(); len(floors) != 0 {
		t.Errorf("mini-boss floors = %v, want none", floors)
	}
}

func TestThemeAndSummary(t *testing.T) {
	ts := newTestServer(t)
	id, _ := create(t, ts)
	path := "/api/maps/" + id

	expectCode(t, do(t, ts, http.MethodPost, path+"/theme", `{"name": "nope"}`), http.StatusBadRequest, errors.ErrCodeInvalidInput)

	resp := do(t, ts, http.MethodPost, path+"/theme", `{"name": "ember"}`)
	expectStatus(t, resp, http.StatusOK)
	if got := decodeResp[document.Document](t, resp).VisualConfig.Theme; got != "ember" {
		t.Errorf("theme = %q", got)
	}

	sum := decodeResp[editor.Summary](t, do(t, ts, http.MethodGet, path+"/summary", ""))
	if !sum.Valid || sum.Floors != 7 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestExport(t *testing.T) {
	ts := newTestServer(t)
	id, _ := create(t, ts)
	path := "/api/maps/" + id + "/export/"

	tests := []struct {
		format      string
		contentType string
		contains    string
	}{
		{"json", "application/json", `"mapNodes"`},
		{"dot", "text/vnd.graphviz", "digraph G"},
		{"canvas", "image/svg+xml", "<svg"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			resp := do(t, ts, http.MethodGet, path+tt.format, "")
			expectStatus(t, resp, http.StatusOK)
			if ct := resp.Header.Get("Content-Type"); ct != tt.contentType {
				t.Errorf("content type = %q, want %q", ct, tt.contentType)
			}
			body, _ := io.ReadAll(resp.Body)
			if !strings.Contains(string(body), tt.contains) {
				t.Errorf("body missing %q", tt.contains)
			}
		})
	}

	expectCode(t, do(t, ts, http.MethodGet, path+"gif", ""), http.StatusNotImplemented, errors.ErrCodeUnsupported)
}

func TestImportAndDelete(t *testing.T) {
	ts := newTestServer(t)
	_, d := create(t, ts)

	data, err := document.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	expectStatus(t, do(t, ts, http.MethodPut, "/api/maps/imported", string(data)), http.StatusOK)
	expectCode(t, do(t, ts, http.MethodPut, "/api/maps/imported", `{"mapNodes": []}`), http.StatusBadRequest, errors.ErrCodeInvalidFormat)
	expectCode(t, do(t, ts, http.MethodPut, "/api/maps/bad%20id", string(data)), http.StatusBadRequest, errors.ErrCodeInvalidInput)

	expectStatus(t, do(t, ts, http.MethodDelete, "/api/maps/imported", ""), http.StatusNoContent)
	expectCode(t, do(t, ts, http.MethodDelete, "/api/maps/imported", ""), http.StatusNotFound, errors.ErrCodeMapNotFound)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.ErrCodeInvalidConfig, http.StatusBadRequest},
		{errors.ErrCodeInvalidMap, http.StatusUnprocessableEntity},
		{errors.ErrCodeLockConflict, http.StatusConflict},
		{errors.ErrCodeNodeNotFound, http.StatusNotFound},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
		{"", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.code); got != tt.want {
			t.Errorf("statusFor(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
