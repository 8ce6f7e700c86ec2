package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/coursegraph/pkg/cache"
	"github.com/matzehuels/coursegraph/pkg/catalog"
	"github.com/matzehuels/coursegraph/pkg/graph"
	"github.com/matzehuels/coursegraph/pkg/observability"
	"github.com/matzehuels/coursegraph/pkg/pipeline"
)

func course(id string, prereqs ...string) catalog.Course {
	return catalog.Course{ID: id, Name: "Course " + id, Semester: "Fall", Year: "1", Prerequisites: prereqs}
}

func catalogJSON(t *testing.T, courses ...catalog.Course) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, catalog.Write(&catalog.Catalog{Courses: courses}, &b))
	return b.String()
}

// chainWithShortcut is the chain A → B → C → D with the shortcut A → D.
func chainWithShortcut(t *testing.T) string {
	return catalogJSON(t, course("A"), course("B", "A"), course("C", "B"), course("D", "C", "A"))
}

func newTestServer(t *testing.T) (*Server, *Metrics) {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)

	metrics := NewMetrics("coursegraph")
	metrics.Install()
	t.Cleanup(observability.Reset)

	return New(pipeline.NewRunner(fc, nil, nil), metrics, nil), metrics
}

func do(t *testing.T, h http.Handler, method, target, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestLayout(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodPost, "/v1/layout", chainWithShortcut(t), "Content-Type", "application/json")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var l graph.Layout
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&l))

	assert.Equal(t, "TB", l.Direction)
	require.Len(t, l.Nodes, 4)
	levels := map[string]int{}
	for _, n := range l.Nodes {
		levels[n.ID] = n.Level
	}
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2, "D": 3}, levels)
	assert.Len(t, l.Edges, 4)
}

func TestLayoutLeftToRight(t *testing.T) {
	s, _ := newTestServer(t)
	body := catalogJSON(t, course("A"), course("B", "A"))
	rec := do(t, s.Handler(), http.MethodPost, "/v1/layout?direction=lr", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var l graph.Layout
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&l))
	assert.Equal(t, "LR", l.Direction)

	b, ok := l.Node("B")
	require.True(t, ok)
	assert.Equal(t, 280.0, b.X)
	assert.Equal(t, 0.0, b.Y)
	assert.Equal(t, []string{"left", "right"}, b.Handles)
}

func TestLayoutExpand(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodPost, "/v1/layout?expand=B", chainWithShortcut(t))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var l graph.Layout
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&l))

	var ids []string
	for _, n := range l.Nodes {
		ids = append(ids, n.ID)
	}
	assert.ElementsMatch(t, []string{"A", "B", "C"}, ids)
}

func TestLayoutErrors(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		body        func(t *testing.T) string
		contentType string
		wantStatus  int
		wantCode    string
	}{
		{
			name:       "cycle",
			target:     "/v1/layout",
			body:       func(t *testing.T) string { return catalogJSON(t, course("A", "B"), course("B", "A")) },
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "CYCLE_DETECTED",
		},
		{
			name:       "unknown prerequisite",
			target:     "/v1/layout",
			body:       func(t *testing.T) string { return catalogJSON(t, course("A"), course("B", "X")) },
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_CATALOG",
		},
		{
			name:       "malformed json",
			target:     "/v1/layout",
			body:       func(*testing.T) string { return `{"courses": [` },
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_CATALOG",
		},
		{
			name:       "missing fields",
			target:     "/v1/layout",
			body:       func(*testing.T) string { return `{"courses": [{"name": "Intro"}]}` },
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_CATALOG",
		},
		{
			name:       "bad direction",
			target:     "/v1/layout?direction=diagonal",
			body:       chainWithShortcut,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_DIRECTION",
		},
		{
			name:        "unsupported content type",
			target:      "/v1/layout",
			body:        chainWithShortcut,
			contentType: "application/xml",
			wantStatus:  http.StatusUnsupportedMediaType,
			wantCode:    "UNSUPPORTED",
		},
		{
			name:       "bad format",
			target:     "/v1/render?format=gif",
			body:       chainWithShortcut,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t)
			var header []string
			if tt.contentType != "" {
				header = []string{"Content-Type", tt.contentType}
			}
			rec := do(t, s.Handler(), http.MethodPost, tt.target, tt.body(t), header...)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotEmpty(t, resp.Message)
			assert.Equal(t, rec.Header().Get(RequestIDHeader), resp.RequestID)
		})
	}
}

func TestLayoutValidationDetails(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodPost, "/v1/layout", `{"courses": [{"id": "A"}, {"id": "A", "name": "x", "semester": "s", "year": "1"}]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Contains(t, strings.Join(resp.Details, "\n"), "duplicate id")
}

func TestLayoutYAML(t *testing.T) {
	s, _ := newTestServer(t)
	body := `
courses:
  - id: A
    name: Intro
    semester: Fall
    year: "1"
  - id: B
    name: Next
    semester: Spring
    year: "1"
    prerequisites: [A]
`
	rec := do(t, s.Handler(), http.MethodPost, "/v1/layout", body, "Content-Type", "application/yaml")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRender(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	rec := do(t, h, http.MethodPost, "/v1/render?format=dot", chainWithShortcut(t))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "graphviz")
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "digraph"))
	assert.Contains(t, rec.Body.String(), `"A" -> "D"`)

	again := do(t, h, http.MethodPost, "/v1/render?format=dot", chainWithShortcut(t))
	require.Equal(t, http.StatusOK, again.Code)
	assert.Equal(t, "HIT", again.Header().Get("X-Cache"))
	assert.Equal(t, rec.Body.String(), again.Body.String())
}

func TestRenderHTML(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodPost, "/v1/render?format=html&title=Catalog", chainWithShortcut(t))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Catalog")
}

func TestRelations(t *testing.T) {
	tests := []struct {
		target string
		want   RelationsResponse
	}{
		{"/v1/courses/A/dependents", RelationsResponse{Course: "A", Relation: "dependents", Courses: []string{"B", "D"}}},
		{"/v1/courses/D/prerequisites", RelationsResponse{Course: "D", Relation: "prerequisites", Courses: []string{"C", "A"}}},
		{"/v1/courses/A/prerequisites", RelationsResponse{Course: "A", Relation: "prerequisites", Courses: []string{}}},
		{"/v1/courses/D/dependents", RelationsResponse{Course: "D", Relation: "dependents", Courses: []string{}}},
	}

	s, _ := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(t, s.Handler(), http.MethodPost, tt.target, chainWithShortcut(t))
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var got RelationsResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRelationsUnknownCourse(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodPost, "/v1/courses/Z/dependents", chainWithShortcut(t))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "COURSE_NOT_FOUND", decodeError(t, rec).Code)
}

func TestRelationsDanglingPrerequisite(t *testing.T) {
	s, _ := newTestServer(t)
	body := catalogJSON(t, course("B", "ghost"), course("C", "ghost"))

	rec := do(t, s.Handler(), http.MethodPost, "/v1/courses/ghost/dependents", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got RelationsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, RelationsResponse{Course: "ghost", Relation: "dependents", Courses: []string{"B", "C"}}, got)

	rec = do(t, s.Handler(), http.MethodPost, "/v1/courses/ghost/prerequisites", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Empty(t, got.Courses)
}

func TestRequestID(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	id := uuid.NewString()
	rec := do(t, h, http.MethodGet, "/healthz", "", RequestIDHeader, id)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))

	rec = do(t, h, http.MethodGet, "/healthz", "", RequestIDHeader, "not-a-uuid")
	got := rec.Header().Get(RequestIDHeader)
	assert.NotEqual(t, "not-a-uuid", got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestBodyLimit(t *testing.T) {
	s, _ := newTestServer(t)
	s.MaxBodyBytes = 16

	rec := do(t, s.Handler(), http.MethodPost, "/v1/layout", chainWithShortcut(t))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestMetrics(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	do(t, h, http.MethodPost, "/v1/layout", chainWithShortcut(t))
	do(t, h, http.MethodPost, "/v1/layout", catalogJSON(t, course("A", "B"), course("B", "A")))

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, `coursegraph_http_requests_total{method="POST",route="/v1/layout",status="200"} 1`)
	assert.Contains(t, text, `coursegraph_http_requests_total{method="POST",route="/v1/layout",status="422"} 1`)
	assert.Contains(t, text, `coursegraph_http_errors_total{code="cycle_detected",route="/v1/layout"} 1`)
	assert.Contains(t, text, `coursegraph_pipeline_stages_total{stage="layout",status="ok"} 1`)
}
