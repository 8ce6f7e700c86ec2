package server

import (
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/coursegraph/pkg/catalog"
	"github.com/matzehuels/coursegraph/pkg/core/dag"
	"github.com/matzehuels/coursegraph/pkg/errors"
	"github.com/matzehuels/coursegraph/pkg/pipeline"
)

// contentTypes maps render formats to response media types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatHTML: "text/html; charset=utf-8",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLayout returns the layout JSON of the catalog in the body.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := s.layoutOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	cat, err := s.decodeCatalog(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	l, err := s.runner.Layout(r.Context(), cat, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// handleRender returns one rendered artifact of the catalog in the body.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := s.layoutOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	format := strings.ToLower(q.Get("format"))
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}
	opts.Title = q.Get("title")
	if v := q.Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || scale <= 0 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid scale %q", v))
			return
		}
		opts.Scale = scale
	}

	cat, err := s.decodeCatalog(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	l, err := s.runner.Layout(r.Context(), cat, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	artifacts, hit, err := s.runner.RenderWithCacheInfo(r.Context(), l, opts)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format))
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cacheStatus(hit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

type relation string

const (
	relationPrerequisites relation = "prerequisites"
	relationDependents    relation = "dependents"
)

// RelationsResponse lists the direct neighbours of one course in edge order.
type RelationsResponse struct {
	Course   string   `json:"course"`
	Relation string   `json:"relation"`
	Courses  []string `json:"courses"`
}

// handleRelations answers a relationship query against the catalog in the
// body. The catalog is not validated; unknown prerequisites are listed as
// they appear and can be queried themselves. Only an id that appears
// nowhere in the graph yields 404.
func (s *Server) handleRelations(rel relation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := errors.ValidateCourseID(id); err != nil {
			s.writeError(w, r, err)
			return
		}
		cat, err := s.decodeCatalog(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		g := dag.Build(cat)
		if !g.Mentions(id) {
			s.writeError(w, r, errors.New(errors.ErrCodeCourseNotFound, "course %q not found", id))
			return
		}

		resp := RelationsResponse{Course: id, Relation: string(rel)}
		switch rel {
		case relationPrerequisites:
			resp.Courses = g.Prerequisites(id)
		case relationDependents:
			resp.Courses = g.Dependents(id)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// decodeCatalog reads the request body in the format named by Content-Type.
func (s *Server) decodeCatalog(r *http.Request) (*catalog.Catalog, error) {
	format, err := catalogFormat(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}
	return s.runner.Decode(r.Context(), r.Body, format)
}

// catalogFormat maps a Content-Type to a catalog format. An empty type is
// treated as JSON.
func catalogFormat(contentType string) (catalog.Format, error) {
	if contentType == "" {
		return catalog.FormatJSON, nil
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeUnsupported, err, "invalid content type")
	}
	switch mt {
	case "application/json", "text/json":
		return catalog.FormatJSON, nil
	case "application/toml", "text/toml":
		return catalog.FormatTOML, nil
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return catalog.FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unsupported content type %q (want json, toml or yaml)", mt)
}

// layoutOptions reads the layout query parameters shared by layout and
// render on top of the server defaults.
func (s *Server) layoutOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{Direction: s.Defaults.Direction, Config: s.Defaults.Config}
	if d := q.Get("direction"); d != "" {
		opts.Direction = d
	}

	for _, v := range q["expand"] {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				opts.Expand = append(opts.Expand, id)
			}
		}
	}

	flags := []struct {
		name string
		dst  *bool
	}{
		{"collapsed", &opts.Collapsed},
		{"detailed", &opts.Detailed},
	}
	for _, f := range flags {
		name, dst := f.name, f.dst
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid %s %q", name, v)
		}
		*dst = b
	}

	if err := opts.ValidateForLayout(); err != nil {
		return opts, err
	}
	return opts, nil
}

func cacheStatus(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}
