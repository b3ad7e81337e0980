package handlers

import "net/http"

// ServiceInfo is the body of GET /info.
type ServiceInfo struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// Home handles GET / with a plain text greeting.
func Home(greeting string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteText(w, http.StatusOK, greeting)
	}
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Info handles GET /info.
func Info(info ServiceInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, info)
	}
}

// NotFound answers unmatched paths with a JSON 404.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

// MethodNotAllowed answers a known path hit with the wrong method with a JSON 405.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}
