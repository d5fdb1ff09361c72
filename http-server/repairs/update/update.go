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

type RepairUpdater interface {
	UpdateRepairOrder(ctx context.Context, repairID int64, r storage.RepairOrder) error
}

type Response struct {
	Status string `json:"status"`
}

func UpdateRepairOrder(log *slog.Logger, updater RepairUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.repairs.update.UpdateRepairOrder"

		repairID, err := strconv.ParseInt(chi.URLParam(r, "repairID"), 10, 64)
		if err != nil {
			http.Error(w, "Bad request: invalid repair id", http.StatusBadRequest)
			return
		}

		var req storage.RepairOrder
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Status == "" || req.DeliveryStatus == "" {
			http.Error(w, "Bad request: status and delivery status are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = updater.UpdateRepairOrder(ctx, repairID, req)
		if errors.Is(err, storage.ErrRepairNotFound) {
			http.Error(w, "repair order not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("failed to update repair order", slog.String("op", op), slog.Int64("repair_id", repairID), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("repair order updated", slog.Int64("repair_id", repairID))

		render.JSON(w, r, Response{Status: "success"})
	}
}
