package app

import (
	"fmt"
	"os"

	"go-worksphere/internal/employee"
	"go-worksphere/internal/middleware"
	"go-worksphere/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the database and wires repository → service → handler →
// routes by hand. No container.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	db, err := connectDatabase()
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&employee.Employee{}); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB failed: %w", err)
	}

	employeeRepo := employee.NewRepository(db)
	employeeService := employee.NewService(sqlDB, employeeRepo, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)

	api := router.Group("/api")
	api.Use(middleware.RequestID())
	api.Use(middleware.ContextLogger(logger))
	api.Use(middleware.RateLimitByIP(50, 100))

	employee.RegisterRoutes(api, employeeHandler)

	return nil
}

func connectDatabase() (*gorm.DB, error) {
	if os.Getenv("DB_DRIVER") == "sqlite" {
		return connection.ConnectSQLite(os.Getenv("SQLITE_PATH"))
	}

	return connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
}
