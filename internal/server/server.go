// Package server is the web host: it accepts a regular expression, runs the
// conversion, and serves back either the rendered diagram or the validation
// error.
package server

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"

	"redfa/regexdfa"
)

// Renderer draws an automaton and returns the name of the produced image
// file.
type Renderer interface {
	Render(ctx context.Context, a *regexdfa.Automaton) (string, error)
}

// Handler holds the HTTP handlers for the redfa web host.
type Handler struct {
	renderer Renderer
	imageDir string
	logger   *slog.Logger
}

// NewHandler creates a Handler that renders through r and serves images from
// imageDir.
func NewHandler(r Renderer, imageDir string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{renderer: r, imageDir: imageDir, logger: logger}
}

// RegisterRoutes registers all routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("POST /convert", h.handleConvertForm)
	mux.HandleFunc("POST /api/convert", h.handleConvertAPI)
	mux.Handle("GET /images/", http.StripPrefix("/images/", http.FileServer(http.Dir(h.imageDir))))
	mux.HandleFunc("GET /health", h.handleHealth)
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Regular Expression to DFA</title></head>
<body>
<h1>Regular Expression to DFA</h1>
{{if .Error}}<p style="color:red">{{.Error}}</p>{{end}}
<form method="post" action="/convert">
  <input type="text" name="regex" placeholder="(a|b)*abb" value="{{.Pattern}}">
  <button type="submit">Convert</button>
</form>
</body>
</html>
`))

var resultTmpl = template.Must(template.New("result").Parse(`<!DOCTYPE html>
<html>
<head><title>DFA for {{.Pattern}}</title></head>
<body>
<h1>DFA for <code>{{.Pattern}}</code></h1>
<img src="{{.ImageURL}}" alt="DFA diagram">
<p><a href="/">Convert another</a></p>
</body>
</html>
`))

type pageData struct {
	Pattern  string
	Error    string
	ImageURL string
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handler) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = indexTmpl.Execute(w, pageData{})
}

// handleConvertForm serves the browser flow: a valid pattern yields a result
// page with the diagram, an invalid one re-renders the form with the parse
// error verbatim.
func (h *Handler) handleConvertForm(w http.ResponseWriter, r *http.Request) {
	pattern := r.FormValue("regex")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	a, err := regexdfa.Convert(pattern)
	if err != nil {
		_ = indexTmpl.Execute(w, pageData{Pattern: pattern, Error: "Invalid regular expression: " + err.Error()})
		return
	}

	name, err := h.renderer.Render(r.Context(), a)
	if err != nil {
		h.logger.Error("render failed", "pattern", pattern, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = indexTmpl.Execute(w, pageData{Pattern: pattern, Error: "rendering failed"})
		return
	}

	h.logger.Info("converted", "pattern", pattern, "states", len(a.States), "image", name)
	_ = resultTmpl.Execute(w, pageData{Pattern: pattern, ImageURL: "/images/" + name})
}

// handleConvertAPI is the machine interface: JSON in, automaton plus image
// URL out.
func (h *Handler) handleConvertAPI(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Pattern string `json:"pattern"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	a, err := regexdfa.Convert(req.Pattern)
	if err != nil {
		// parse failures are a property of the input; the message goes back
		// verbatim
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	name, err := h.renderer.Render(r.Context(), a)
	if err != nil {
		h.logger.Error("render failed", "pattern", req.Pattern, "error", err)
		writeError(w, http.StatusInternalServerError, "rendering failed")
		return
	}

	h.logger.Info("converted", "pattern", req.Pattern, "states", len(a.States), "image", name)
	writeJSON(w, http.StatusOK, map[string]any{
		"pattern":   req.Pattern,
		"states":    a.States,
		"accepting": a.Accepting(),
		"image_url": "/images/" + name,
	})
}
