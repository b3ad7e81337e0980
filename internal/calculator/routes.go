package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts GET /add, /sub, /mul, /div and POST /calc.
func RegisterRoutes(r chi.Router) {
	for _, op := range Operations {
		r.Get("/"+string(op), Arithmetic(op))
	}
	r.Post("/calc", Calc)
}
