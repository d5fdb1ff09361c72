package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"jewel-shop/internal/storage"
)

type EmployeeProvider interface {
	ListEmployees(ctx context.Context) ([]storage.Employee, error)
}

func ListEmployees(log *slog.Logger, provider EmployeeProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.employees.get.ListEmployees"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		employees, err := provider.ListEmployees(ctx)
		if err != nil {
			log.Error("failed to list employees", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if employees == nil {
			employees = []storage.Employee{}
		}
		render.JSON(w, r, employees)
	}
}
