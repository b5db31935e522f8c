package main

import (
	"net/http"
	"os"

	logrus "github.com/sirupsen/logrus"

	"travel_manager/internal/config"
	"travel_manager/internal/logger"
	"travel_manager/internal/middleware"
	"travel_manager/internal/routes"
	"travel_manager/internal/services"
)

func main() {
	logger.Setup()

	config.InitDB()

	seedUsers()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	handler := middleware.EnableCORS(r)

	logrus.Infof("starting server on port %s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}

// seedUsers guarantees the two operator accounts exist so a fresh database is
// usable without manual inserts. Passwords come from the environment; the
// defaults are only meant for local development.
func seedUsers() {
	adminUser := envOr("ADMIN_USERNAME", "admin")
	adminPass := envOr("ADMIN_PASSWORD", "admin")
	if err := services.SeedUser(config.DB, adminUser, adminPass, "admin"); err != nil {
		logrus.Fatalf("seeding admin user: %v", err)
	}

	officeUser := envOr("OFFICE_USERNAME", "office")
	officePass := envOr("OFFICE_PASSWORD", "office")
	if err := services.SeedUser(config.DB, officeUser, officePass, "limited"); err != nil {
		logrus.Fatalf("seeding office user: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
