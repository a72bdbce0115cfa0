package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"gymops/internal/database"
	"gymops/internal/domain"
	"gymops/internal/modules/inventory"
	"gymops/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "gymops.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM maintenance_logs")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM members")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)

	log.Println("Creating users...")
	now := time.Now().UTC()
	for _, u := range []struct {
		email, password, name string
		role                  domain.UserRole
	}{
		{"admin@gymops.local", "admin123", "Admin", domain.RoleAdmin},
		{"staff@gymops.local", "staff123", "Front Desk", domain.RoleStaff},
		{"member@gymops.local", "member123", "First Member", domain.RoleMember},
	} {
		hash, _ := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		user := domain.User{
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			Name:         u.name,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, &user); err != nil {
			log.Fatal("seed user failed:", err)
		}
	}

	log.Println("Creating equipment...")
	equipmentRepo := repository.NewEquipmentRepository(db)
	logRepo := repository.NewMaintenanceLogRepository(db)
	svc := inventory.NewService(equipmentRepo, logRepo, inventory.NewScheduler(domain.DefaultSchedule()), nil)

	cost := func(v float64) *float64 { return &v }
	date := func(daysFromNow int) *time.Time {
		t := now.AddDate(0, 0, daysFromNow)
		return &t
	}

	seedItems := []inventory.CreateEquipmentRequest{
		{Name: "Treadmill T-900", Type: "Treadmill", Category: domain.CategoryCardio, Quantity: 6, Brand: "LifeFit", Model: "T-900", Location: "Cardio floor", Cost: cost(4200), PurchaseDate: date(-400)},
		{Name: "Rowing Machine", Type: "Rower", Category: domain.CategoryCardio, Quantity: 4, Brand: "Concept2", Model: "RowErg", Location: "Cardio floor", Cost: cost(1100), PurchaseDate: date(-200)},
		{Name: "Squat Rack", Type: "Rack", Category: domain.CategoryStrength, Quantity: 3, Brand: "Rogue", Model: "R-3", Location: "Strength zone", Cost: cost(900), PurchaseDate: date(-700)},
		{Name: "Dumbbell Set 5-50kg", Type: "Dumbbells", Category: domain.CategoryFreeWeights, Quantity: 10, Location: "Free weights", Cost: cost(1500), PurchaseDate: date(-300)},
		{Name: "Resistance Bands", Type: "Bands", Category: domain.CategoryAccessories, Quantity: 20, Location: "Studio", Cost: cost(10), PurchaseDate: date(-90)},
	}
	created := make([]*domain.EquipmentRecord, 0, len(seedItems))
	for _, req := range seedItems {
		rec, err := svc.Create(ctx, req)
		if err != nil {
			log.Fatal("seed equipment failed:", err)
		}
		created = append(created, rec)
	}

	log.Println("Logging maintenance history...")
	if _, _, err := svc.LogMaintenance(ctx, created[0].ID, inventory.LogMaintenanceRequest{
		Type:        string(domain.MaintenanceInspection),
		Description: "Quarterly belt inspection",
		Cost:        cost(50),
		PerformedBy: "TechServ",
		NextDue:     date(20),
	}); err != nil {
		log.Fatal("seed maintenance failed:", err)
	}
	if _, _, err := svc.LogMaintenance(ctx, created[2].ID, inventory.LogMaintenanceRequest{
		Type:        string(domain.MaintenanceRepair),
		Description: "Replaced worn J-cups",
		Cost:        cost(120),
		PerformedBy: "In-house",
		NextDue:     date(-3), // already overdue, visible in the due queue
	}); err != nil {
		log.Fatal("seed maintenance failed:", err)
	}

	log.Println("Seed complete.")
}
