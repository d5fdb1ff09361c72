package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"jewel-shop/internal/storage"
)

type ServiceProvider interface {
	GetRecentPiercingServices(ctx context.Context, count int) ([]storage.PiercingService, error)
	GetPiercingStats(ctx context.Context) (*storage.PiercingStats, error)
	GetRecentOtherServices(ctx context.Context, count int) ([]storage.OtherService, error)
	GetOtherServiceStats(ctx context.Context) (*storage.OtherServiceStats, error)
}

func GetRecentPiercingServices(log *slog.Logger, provider ServiceProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.services.get.GetRecentPiercingServices"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		services, err := provider.GetRecentPiercingServices(ctx, recentCount(r))
		if err != nil {
			log.Error("failed to list piercing services", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if services == nil {
			services = []storage.PiercingService{}
		}
		render.JSON(w, r, services)
	}
}

func GetPiercingStats(log *slog.Logger, provider ServiceProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.services.get.GetPiercingStats"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		stats, err := provider.GetPiercingStats(ctx)
		if err != nil {
			log.Error("failed to get piercing stats", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, stats)
	}
}

func GetRecentOtherServices(log *slog.Logger, provider ServiceProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.services.get.GetRecentOtherServices"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		services, err := provider.GetRecentOtherServices(ctx, recentCount(r))
		if err != nil {
			log.Error("failed to list other services", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if services == nil {
			services = []storage.OtherService{}
		}
		render.JSON(w, r, services)
	}
}

func GetOtherServiceStats(log *slog.Logger, provider ServiceProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.services.get.GetOtherServiceStats"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		stats, err := provider.GetOtherServiceStats(ctx)
		if err != nil {
			log.Error("failed to get other service stats", slog.String("op", op), slog.String("error", err.Error()))
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
