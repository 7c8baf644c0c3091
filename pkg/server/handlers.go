package server

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avulnerador/RogueMap-Gen/pkg/config"
	"github.com/avulnerador/RogueMap-Gen/pkg/document"
	"github.com/avulnerador/RogueMap-Gen/pkg/editor"
	"github.com/avulnerador/RogueMap-Gen/pkg/errors"
	"github.com/avulnerador/RogueMap-Gen/pkg/nodetype"
	"github.com/avulnerador/RogueMap-Gen/pkg/pipeline"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
	"github.com/avulnerador/RogueMap-Gen/pkg/store"
)

type createResponse struct {
	ID       string            `json:"id"`
	Document document.Document `json:"document"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, nodetype.Themes())
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, ids)
}

// handleCreate generates a new map. The body is an optional map config;
// omitted fields keep their defaults.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	cfg := config.Default()
	if len(bytes.TrimSpace(data)) > 0 {
		if err := decodeBytes(data, &cfg); err != nil {
			s.writeError(w, err)
			return
		}
	}
	if err := cfg.Validate(); err != nil {
		s.writeError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.editor.Create(cfg)
	if err != nil {
		s.writeError(w, err)
		return
	}
	id := store.NewID()
	if err := s.store.Put(r.Context(), id, d); err != nil {
		s.writeError(w, err)
		return
	}
	s.log.Info("created map", "id", id)
	s.writeJSON(w, http.StatusCreated, createResponse{ID: id, Document: d})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	d, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeDocument(w, r, http.StatusOK, d)
}

// handleImport stores an uploaded document after strict validation.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := store.ValidateID(id); err != nil {
		s.writeError(w, err)
		return
	}
	d, err := document.Read(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Put(r.Context(), id, d); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeDocument(w, r, http.StatusOK, d)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	d, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, editor.Summarize(d))
}

// handleExport renders the map through the export pipeline. The format
// "canvas" is shorthand for an SVG of the positioned map; the nodelink
// formats accept ?detailed.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	d, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	format := chi.URLParam(r, "format")
	opts := pipeline.Options{
		Renderer: r.URL.Query().Get("renderer"),
		Formats:  []string{format},
		Detailed: r.URL.Query().Has("detailed"),
	}
	switch format {
	case "canvas":
		opts.Renderer, opts.Formats = pipeline.RendererCanvas, []string{pipeline.FormatSVG}
	case pipeline.FormatDOT:
		opts.Renderer = pipeline.RendererNodelink
	case pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatPDF:
		if opts.Renderer == "" {
			opts.Renderer = pipeline.RendererNodelink
		}
	}

	artifacts, _, err := s.exporter.Render(r.Context(), d, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := opts.Formats[0]
	w.Header().Set("Content-Type", pipeline.ContentType(out))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[out])
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(d document.Document) (document.Document, error) {
		return s.editor.Generate(d)
	})
}

// handleConfig patches the map config: absent fields keep their current
// values and out-of-range values are clamped.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.mutate(w, r, func(d document.Document) (document.Document, error) {
		cfg := d.MapConfig
		if err := decodeBytes(data, &cfg); err != nil {
			return document.Document{}, err
		}
		return s.editor.SetConfig(d, cfg), nil
	})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(d document.Document) (document.Document, error) {
		return s.editor.UpdateLayout(d), nil
	})
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.mutate(w, r, func(d document.Document) (document.Document, error) {
		return s.editor.ApplyTheme(d, req.Name)
	})
}

func (s *Server) handleUpdateNode(w http.ResponseWriter, r *http.Request) {
	id, ok := s.nodeID(w, r)
	if !ok {
		return
	}
	var n runmap.Node
	if err := decode(r, &n); err != nil {
		s.writeError(w, err)
		return
	}
	if n.ID != id {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "body id %d does not match path id %d", n.ID, id))
		return
	}
	s.mutate(w, r, func(d document.Document) (document.Document, error) {
		return s.editor.UpdateNode(d, n)
	})
}

func (s *Server) handleDeleteNode(w http.ResponseWriter, r *http.Request) {
	id, ok := s.nodeID(w, r)
	if !ok {
		return
	}
	s.mutate(w, r, func(d document.Document) (document.Document, error) {
		return s.editor.Delete(d, id)
	})
}

func (s *Server) handleDrag(w http.ResponseWriter, r *http.Request) {
	id, ok := s.nodeID(w, r)
	if !ok {
		return
	}
	var req struct {
		DX float64 `json:"dx"`
		DY float64 `json:"dy"`
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.mutate(w, r, func(d document.Document) (document.Document, error) {
		return s.editor.Drag(d, id, req.DX, req.DY)
	})
}

func (s *Server) handlePromote(w http.ResponseWriter, r *http.Request) {
	id, ok := s.nodeID(w, r)
	if !ok {
		return
	}
	s.mutate(w, r, func(d document.Document) (document.Document, error) {
		return s.editor.Promote(d, id)
	})
}

func (s *Server) handleLock(w http.ResponseWriter, r *http.Request) {
	id, ok := s.nodeID(w, r)
	if !ok {
		return
	}
	var req struct {
		Locked bool `json:"locked"`
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.mutate(w, r, func(d document.Document) (document.Document, error) {
		return s.editor.SetLocked(d, id, req.Locked)
	})
}

// mutate loads the document named by the id parameter, applies fn and
// stores the result. A failing fn leaves the stored document untouched.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, fn func(document.Document) (document.Document, error)) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	d, err = fn(d)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.Put(r.Context(), id, d); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeDocument(w, r, http.StatusOK, d)
}

func (s *Server) nodeID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "node")
	id, err := strconv.Atoi(raw)
	if err != nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid node id %q", raw))
		return 0, false
	}
	return id, true
}

// writeDocument writes d with an ETag of its content hash and honours
// If-None-Match.
func (s *Server) writeDocument(w http.ResponseWriter, r *http.Request, status int, d document.Document) {
	data, err := document.Marshal(d)
	if err != nil {
		s.writeError(w, err)
		return
	}
	hash, err := document.Hash(d)
	if err != nil {
		s.writeError(w, err)
		return
	}

	etag := `"` + hash + `"`
	w.Header().Set("ETag", etag)
	if r.Method == http.MethodGet && r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.Copy(w, bytes.NewReader(data))
}
