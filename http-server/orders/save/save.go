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

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, o storage.Order) (int64, error)
}

type Response struct {
	BillNo int64  `json:"bill_no"`
	Status string `json:"status"`
}

func PlaceOrder(log *slog.Logger, placer OrderPlacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.save.PlaceOrder"

		var req storage.Order
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if err := validate(req); err != "" {
			http.Error(w, "Bad request: "+err, http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		billNo, err := placer.PlaceOrder(ctx, req)
		if err != nil {
			log.Error("failed to place order", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("order placed", slog.Int64("bill_no", billNo))

		render.JSON(w, r, Response{BillNo: billNo, Status: "success"})
	}
}

// The heavy per-field checks happen client-side; this is the storage
// boundary contract.
func validate(o storage.Order) string {
	switch {
	case o.Material == "":
		return "material is required"
	case o.ExchangeWeight < 0 || o.DeductWeight < 0 || o.AddedWeight < 0:
		return "weights must not be negative"
	case o.RatePerGram < 0 || o.MaterialCost < 0 || o.MakingCharge < 0 || o.OtherCharge < 0 || o.TotalCost < 0:
		return "amounts must not be negative"
	}
	return ""
}
