package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"jewel-shop/internal/storage"
)

// Service records are append-only: there are save handlers but no update
// handlers, matching the storage surface.

type PiercingAdder interface {
	AddPiercingService(ctx context.Context, p storage.PiercingService) (int64, error)
}

type OtherAdder interface {
	AddOtherService(ctx context.Context, o storage.OtherService) (int64, error)
}

type Response struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func AddPiercingService(log *slog.Logger, adder PiercingAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.services.save.AddPiercingService"

		var req storage.PiercingService
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Amount <= 0 {
			http.Error(w, "Bad request: amount must be positive", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := adder.AddPiercingService(ctx, req)
		if err != nil {
			log.Error("failed to add piercing service", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("piercing service added", slog.Int64("id", id))

		render.JSON(w, r, Response{ID: id, Status: "success"})
	}
}

func AddOtherService(log *slog.Logger, adder OtherAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.services.save.AddOtherService"

		var req storage.OtherService
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Amount <= 0 {
			http.Error(w, "Bad request: amount must be positive", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := adder.AddOtherService(ctx, req)
		if err != nil {
			log.Error("failed to add other service", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("other service added", slog.Int64("id", id))

		render.JSON(w, r, Response{ID: id, Status: "success"})
	}
}
