package report

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type Generator interface {
	Generate(ctx context.Context) ([]byte, error)
}

// GenerateExcel streams the business report workbook.
func GenerateExcel(log *slog.Logger, generator Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.GenerateExcel"

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		data, err := generator.Generate(ctx)
		if err != nil {
			log.Error("failed to generate report", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="jewel-shop-report.xlsx"`)
		w.Write(data)
	}
}
