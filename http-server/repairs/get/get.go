package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"jewel-shop/internal/storage"
)

type RepairProvider interface {
	GetRepairOrder(ctx context.Context, repairID int64) (*storage.RepairOrder, error)
	GetRecentRepairOrders(ctx context.Context, count int) ([]storage.RepairOrder, error)
	GetRepairOrderStats(ctx context.Context) (*storage.RepairOrderStats, error)
}

func GetRepairOrder(log *slog.Logger, provider RepairProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.repairs.get.GetRepairOrder"

		repairID, err := strconv.ParseInt(chi.URLParam(r, "repairID"), 10, 64)
		if err != nil {
			http.Error(w, "Bad request: invalid repair id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		repair, err := provider.GetRepairOrder(ctx, repairID)
		if errors.Is(err, storage.ErrRepairNotFound) {
			http.Error(w, "repair order not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("failed to get repair order", slog.String("op", op), slog.Int64("repair_id", repairID), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, repair)
	}
}

func GetRecentRepairOrders(log *slog.Logger, provider RepairProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.repairs.get.GetRecentRepairOrders"

		count, err := strconv.Atoi(r.URL.Query().Get("count"))
		if err != nil || count <= 0 {
			count = 10
		}
		if count > 1000 {
			count = 1000
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		repairs, err := provider.GetRecentRepairOrders(ctx, count)
		if err != nil {
			log.Error("failed to list recent repair orders", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if repairs == nil {
			repairs = []storage.RepairOrder{}
		}
		render.JSON(w, r, repairs)
	}
}

func GetRepairOrderStats(log *slog.Logger, provider RepairProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.repairs.get.GetRepairOrderStats"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		stats, err := provider.GetRepairOrderStats(ctx)
		if err != nil {
			log.Error("failed to get repair order stats", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, stats)
	}
}
