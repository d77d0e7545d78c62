package snipper

import (
	"bytes"
	"encoding/json"
	"net/http"
	"path"
)

// composeRequest is the body of requests to the handler.
type composeRequest struct {
	Query   string `json:"query"`
	Bolding *bool  `json:"bolding"` // defaults to true
	Hits    []Hit  `json:"hits"`
}

// Handler returns an http.Handler that composes snippets for hits POSTed as JSON under basePath:
// "snippets" responds with the JSON results and "preview" with an HTML preview of them.
func (c *Composer) Handler(basePath string) http.Handler {
	m := http.NewServeMux()

	const cacheMaxAge0 = "max-age=0"

	compose := func(w http.ResponseWriter, r *http.Request) ([]HitResult, bool) {
		w.Header().Set("Cache-Control", cacheMaxAge0)
		if r.Method != "POST" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return nil, false
		}
		var req composeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request: "+err.Error(), http.StatusBadRequest)
			return nil, false
		}
		bolding := req.Bolding == nil || *req.Bolding
		results, err := c.ComposeHits(r.Context(), req.Query, bolding, req.Hits)
		if err != nil {
			http.Error(w, "compose error: "+err.Error(), http.StatusInternalServerError)
			return nil, false
		}
		return results, true
	}

	m.Handle(path.Join(basePath, "snippets"), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		results, ok := compose(w, r)
		if !ok {
			return
		}
		respData, err := json.Marshal(results)
		if err != nil {
			http.Error(w, "encoding error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(respData)
	}))

	m.Handle(path.Join(basePath, "preview"), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		results, ok := compose(w, r)
		if !ok {
			return
		}
		var buf bytes.Buffer
		if err := WriteHTML(&buf, results); err != nil {
			http.Error(w, "render error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	}))

	return m
}
