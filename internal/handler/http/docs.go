package http

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var openAPIDocument []byte

const docsPage = `<!DOCTYPE html>
<html>
<head><title>user-management-api</title></head>
<body>
<h1>user-management-api</h1>
<p>The OpenAPI schema is served at <a href="/openapi.json">/openapi.json</a>.</p>
</body>
</html>`

// docs serves a minimal human-readable API description page.
func (h *Handler) docs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(docsPage))
}

// openAPISchema serves the embedded OpenAPI document.
func (h *Handler) openAPISchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(openAPIDocument)
}
