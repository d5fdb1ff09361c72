package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"jewel-shop/internal/storage"
)

type OrderUpdater interface {
	UpdateOrder(ctx context.Context, billNo int64, o storage.Order) error
}

type Response struct {
	Status string `json:"status"`
}

// UpdateOrder overwrites the full field set; there is no partial patch.
func UpdateOrder(log *slog.Logger, updater OrderUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.update.UpdateOrder"

		billNo, err := strconv.ParseInt(chi.URLParam(r, "billNo"), 10, 64)
		if err != nil {
			http.Error(w, "Bad request: invalid bill number", http.StatusBadRequest)
			return
		}

		var req storage.Order
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Material == "" {
			http.Error(w, "Bad request: material is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = updater.UpdateOrder(ctx, billNo, req)
		if errors.Is(err, storage.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("failed to update order", slog.String("op", op), slog.Int64("bill_no", billNo), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("order updated", slog.Int64("bill_no", billNo))

		render.JSON(w, r, Response{Status: "success"})
	}
}
