package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clubsite/internal/config"
	"clubsite/internal/db"
	"clubsite/internal/model"
	"clubsite/internal/repository"
)

// Seeds the admin user from ADMIN_NAME/ADMIN_EMAIL/ADMIN_PASSWORD and, when
// the tables are empty, a demo roster and fixture list. The API never exposes
// role changes, so this is the only way the first admin comes to exist.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	if cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD must be set")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Player{},
		&model.Match{},
		&model.News{},
		&model.GalleryItem{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	if err := seedAdmin(ctx, repository.NewUserRepository(gormDB), cfg); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	if err := seedDemoData(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	log.Println("Seed completed successfully!")
}

// seedAdmin creates the admin user or promotes an existing user with the
// configured email.
func seedAdmin(ctx context.Context, users repository.UserRepository, cfg *config.Config) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), 10)
	if err != nil {
		return err
	}

	existing, err := users.FindByEmail(ctx, cfg.AdminEmail)
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}

	if existing != nil {
		existing.Role = model.RoleAdmin
		existing.PasswordHash = string(hashed)
		if err := users.Update(ctx, existing); err != nil {
			return err
		}
		log.Printf("Promoted existing user %s to admin", cfg.AdminEmail)
		return nil
	}

	admin := &model.User{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
		Role:         model.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Created admin user %s", cfg.AdminEmail)
	return nil
}

// seedDemoData inserts a small roster and fixture list when the tables are
// empty, so a fresh install has something to show.
func seedDemoData(ctx context.Context, gormDB *gorm.DB) error {
	var playerCount int64
	if err := gormDB.WithContext(ctx).Model(&model.Player{}).Count(&playerCount).Error; err != nil {
		return err
	}
	if playerCount == 0 {
		players := []model.Player{
			{Name: "Jan Kowalski", Position: model.PositionGoalkeeper, Number: 1, Age: 28, Nationality: "Poland"},
			{Name: "Marco Rossi", Position: model.PositionDefender, Number: 4, Age: 25, Nationality: "Italy"},
			{Name: "Tom Baker", Position: model.PositionMidfielder, Number: 8, Age: 23, Nationality: "England"},
			{Name: "Luis Moreno", Position: model.PositionForward, Number: 9, Age: 26, Nationality: "Spain", Goals: 12, Assists: 4},
		}
		if err := gormDB.WithContext(ctx).Create(&players).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d demo players", len(players))
	}

	var matchCount int64
	if err := gormDB.WithContext(ctx).Model(&model.Match{}).Count(&matchCount).Error; err != nil {
		return err
	}
	if matchCount == 0 {
		nextSaturday := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
		matches := []model.Match{
			{HomeTeam: "Club FC", AwayTeam: "Riverside United", Date: nextSaturday, Time: "15:00", Venue: "Club Stadium", Competition: "League", Status: model.MatchScheduled},
			{HomeTeam: "Harbor Town", AwayTeam: "Club FC", Date: nextSaturday.AddDate(0, 0, 14), Time: "18:30", Venue: "Harbor Arena", Competition: "Cup", Status: model.MatchScheduled},
		}
		if err := gormDB.WithContext(ctx).Create(&matches).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d demo matches", len(matches))
	}

	return nil
}
