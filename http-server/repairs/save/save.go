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

type RepairCreator interface {
	CreateRepairOrder(ctx context.Context, r storage.RepairOrder) (int64, error)
}

type Response struct {
	RepairID int64  `json:"repair_id"`
	Status   string `json:"status"`
}

func CreateRepairOrder(log *slog.Logger, creator RepairCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.repairs.save.CreateRepairOrder"

		var req storage.RepairOrder
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if msg := validate(req); msg != "" {
			http.Error(w, "Bad request: "+msg, http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		repairID, err := creator.CreateRepairOrder(ctx, req)
		if err != nil {
			log.Error("failed to create repair order", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("repair order created", slog.Int64("repair_id", repairID))

		render.JSON(w, r, Response{RepairID: repairID, Status: "success"})
	}
}

func validate(r storage.RepairOrder) string {
	switch {
	case r.Material == "":
		return "material is required"
	case r.Status == "":
		return "status is required"
	case r.DeliveryStatus == "":
		return "delivery status is required"
	case r.AddedMaterialWeight < 0:
		return "added material weight must not be negative"
	case r.MaterialCost < 0 || r.MakingCharge < 0 || r.TotalCost < 0:
		return "amounts must not be negative"
	}
	return ""
}
