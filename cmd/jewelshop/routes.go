package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	employeesGet "jewel-shop/http-server/employees/get"
	employeesSave "jewel-shop/http-server/employees/save"
	ordersGet "jewel-shop/http-server/orders/get"
	ordersSave "jewel-shop/http-server/orders/save"
	ordersUpdate "jewel-shop/http-server/orders/update"
	repairsGet "jewel-shop/http-server/repairs/get"
	repairsSave "jewel-shop/http-server/repairs/save"
	repairsUpdate "jewel-shop/http-server/repairs/update"
	reportHandler "jewel-shop/http-server/report"
	"jewel-shop/http-server/role"
	servicesGet "jewel-shop/http-server/services/get"
	servicesSave "jewel-shop/http-server/services/save"
	"jewel-shop/internal/config"
	"jewel-shop/internal/middleware/auth"
	"jewel-shop/internal/service/report"
	"jewel-shop/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, reportService *report.Service) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(auth.Resolve(storage, cfg.AdminLogin, cfg.AdminPass))

	mutate := auth.Require(auth.RoleUser)
	admin := auth.Require(auth.RoleAdmin)

	router.Get("/api/me/role", role.CallerRole())

	// Orders: anyone may read, users may write.
	router.Get("/api/orders/recent", ordersGet.GetRecentOrders(log, storage))
	router.Get("/api/orders/stats", ordersGet.GetOrderStats(log, storage))
	router.Get("/api/orders/{billNo}", ordersGet.GetOrder(log, storage))
	router.With(mutate).Post("/api/orders", ordersSave.PlaceOrder(log, storage))
	router.With(mutate).Put("/api/orders/{billNo}", ordersUpdate.UpdateOrder(log, storage))

	// Repair orders.
	router.Get("/api/repairs/recent", repairsGet.GetRecentRepairOrders(log, storage))
	router.Get("/api/repairs/stats", repairsGet.GetRepairOrderStats(log, storage))
	router.Get("/api/repairs/{repairID}", repairsGet.GetRepairOrder(log, storage))
	router.With(mutate).Post("/api/repairs", repairsSave.CreateRepairOrder(log, storage))
	router.With(mutate).Put("/api/repairs/{repairID}", repairsUpdate.UpdateRepairOrder(log, storage))

	// Piercing and other services: append-only, no update routes.
	router.Get("/api/services/piercing/recent", servicesGet.GetRecentPiercingServices(log, storage))
	router.Get("/api/services/piercing/stats", servicesGet.GetPiercingStats(log, storage))
	router.With(mutate).Post("/api/services/piercing", servicesSave.AddPiercingService(log, storage))
	router.Get("/api/services/other/recent", servicesGet.GetRecentOtherServices(log, storage))
	router.Get("/api/services/other/stats", servicesGet.GetOtherServiceStats(log, storage))
	router.With(mutate).Post("/api/services/other", servicesSave.AddOtherService(log, storage))

	// Employees: reading is open so forms can offer assignment; managing is admin only.
	router.Get("/api/employees", employeesGet.ListEmployees(log, storage))
	router.With(admin).Post("/api/employees", employeesSave.AddEmployee(log, storage))

	router.With(admin).Get("/api/report/excel", reportHandler.GenerateExcel(log, reportService))

	return router
}
