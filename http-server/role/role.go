package role

import (
	"net/http"

	"github.com/go-chi/render"

	"jewel-shop/internal/middleware/auth"
)

type Response struct {
	Role string `json:"role"`
}

// CallerRole reports which role the presented credentials resolve to, so
// clients can decide what to offer without probing gated endpoints.
func CallerRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, Response{Role: auth.CallerRole(r.Context())})
	}
}
