package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gymops/internal/database"
	"gymops/internal/domain"
	"gymops/internal/middleware"
	"gymops/internal/modules/analytics"
	"gymops/internal/modules/auth"
	"gymops/internal/modules/dashboard"
	"gymops/internal/modules/inventory"
	"gymops/internal/modules/member"
	jwtsvc "gymops/internal/pkg/jwt"
	"gymops/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	logRepo := repository.NewMaintenanceLogRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)
	hub := dashboard.NewHub()
	scheduler := inventory.NewScheduler(scheduleFromEnv())

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	memberService := member.NewService(memberRepo)
	memberHandler := member.NewHandler(memberService)

	inventoryService := inventory.NewService(equipmentRepo, logRepo, scheduler, hub)
	inventoryHandler := inventory.NewHandler(inventoryService)

	analyticsService := analytics.NewService(inventoryService, scheduler.Schedule())
	analyticsHandler := analytics.NewHandler(analyticsService)

	dashboardHandler := dashboard.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS(), middleware.ErrorLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		authed := v1.Group("/")
		authed.Use(middleware.Auth(j))

		staff := authed.Group("/")
		staff.Use(middleware.StaffOnly())

		admin := authed.Group("/")
		admin.Use(middleware.AdminOnly())

		authHandler.RegisterRoutes(v1, admin)
		memberHandler.RegisterRoutes(authed, staff)
		inventoryHandler.RegisterRoutes(authed, staff)
		analyticsHandler.RegisterRoutes(staff)
		dashboardHandler.RegisterRoutes(staff)
	}

	addr := os.Getenv("APP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func scheduleFromEnv() domain.Schedule {
	schedule := domain.DefaultSchedule()
	if raw := os.Getenv("MAINTENANCE_GRACE_DAYS"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			schedule.GraceDays = v
		}
	}
	if raw := os.Getenv("MAINTENANCE_LOOKAHEAD_DAYS"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			schedule.LookaheadDays = v
		}
	}
	return schedule
}
