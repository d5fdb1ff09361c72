package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"jewel-shop/internal/sanitize"
)

type EmployeeAdder interface {
	AddEmployee(ctx context.Context, name, phoneNo string) (int64, error)
}

type Request struct {
	Name    string `json:"name"`
	PhoneNo string `json:"phone_no"`
}

type Response struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func AddEmployee(log *slog.Logger, adder EmployeeAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.employees.save.AddEmployee"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.PhoneNo = strings.TrimSpace(req.PhoneNo)

		if req.Name == "" {
			http.Error(w, "Bad request: name is required", http.StatusBadRequest)
			return
		}
		if req.PhoneNo == "" || !sanitize.ValidPhone(req.PhoneNo) {
			http.Error(w, "Bad request: a valid phone number is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := adder.AddEmployee(ctx, req.Name, req.PhoneNo)
		if err != nil {
			log.Error("failed to add employee", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("employee added", slog.Int64("id", id), slog.String("name", req.Name))

		render.JSON(w, r, Response{ID: id, Status: "success"})
	}
}
