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

type OrderProvider interface {
	GetOrder(ctx context.Context, billNo int64) (*storage.Order, error)
	GetRecentOrders(ctx context.Context, count int) ([]storage.Order, error)
	GetOrderStats(ctx context.Context) (*storage.OrderStats, error)
}

func GetOrder(log *slog.Logger, provider OrderProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.get.GetOrder"

		billNo, err := strconv.ParseInt(chi.URLParam(r, "billNo"), 10, 64)
		if err != nil {
			http.Error(w, "Bad request: invalid bill number", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		order, err := provider.GetOrder(ctx, billNo)
		if errors.Is(err, storage.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("failed to get order", slog.String("op", op), slog.Int64("bill_no", billNo), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, order)
	}
}

func GetRecentOrders(log *slog.Logger, provider OrderProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.get.GetRecentOrders"

		count := recentCount(r)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		orders, err := provider.GetRecentOrders(ctx, count)
		if err != nil {
			log.Error("failed to list recent orders", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if orders == nil {
			orders = []storage.Order{}
		}
		render.JSON(w, r, orders)
	}
}

func GetOrderStats(log *slog.Logger, provider OrderProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.get.GetOrderStats"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		stats, err := provider.GetOrderStats(ctx)
		if err != nil {
			log.Error("failed to get order stats", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, stats)
	}
}

func recentCount(r *http.Request) int {
	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil || count <= 0 {
		return 10
	}
	if count > 1000 {
		return 1000
	}
	return count
}
