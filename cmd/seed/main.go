package main

import (
	"context"
	"errors"
	"log"
	"os"

	"go-careers-backend/config"
	"go-careers-backend/internal/domain"
	"go-careers-backend/internal/repository/postgres"
	"go-careers-backend/pkg/auth"
	"go-careers-backend/pkg/database"
)

// Seeds the admin account and, when the table is empty, a few sample job
// posts. Safe to run repeatedly.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	dbPool, err := database.NewPostgresPool(ctx, cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	adminRepo := postgres.NewAdminRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)

	adminEmail := getenv("ADMIN_EMAIL", "admin@example.com")
	adminPassword := getenv("ADMIN_PASSWORD", "admin123") // Change this in production!

	admin, err := adminRepo.GetByEmail(ctx, adminEmail)
	switch {
	case err == nil:
		log.Printf("Admin already exists: %s", adminEmail)
	case errors.Is(err, domain.ErrNotFound):
		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		admin = &domain.Admin{
			Email:        adminEmail,
			PasswordHash: hash,
			Name:         "Careers Admin",
		}
		if err := adminRepo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}
		log.Printf("Admin created: %s (please change the password in production)", adminEmail)
	default:
		log.Fatalf("Failed to look up admin: %v", err)
	}

	existing, err := jobRepo.FetchAllWithCounts(ctx)
	if err != nil {
		log.Fatalf("Failed to count job posts: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("%d job posts already exist, skipping samples", len(existing))
		return
	}

	for _, job := range sampleJobs(admin.ID) {
		if err := jobRepo.Create(ctx, &job); err != nil {
			log.Fatalf("Failed to create job %q: %v", job.Title, err)
		}
		log.Printf("Created job: %s", job.Title)
	}

	log.Println("Seed completed successfully")
}

func sampleJobs(adminID string) []domain.JobPost {
	return []domain.JobPost{
		{
			Title:       "Senior Full Stack Developer",
			Category:    "Engineering",
			Location:    "Remote",
			Type:        "Full-time",
			Experience:  "3+ years",
			Description: "Join our engineering team to build scalable web applications using modern technologies. You'll work on products that make a real impact.",
			Requirements: []string{
				"Bachelor's degree in Computer Science or related field",
				"3+ years experience building web applications",
				"Experience with Go and PostgreSQL",
				"Strong problem-solving and communication skills",
			},
			IsActive: true,
			AdminID:  adminID,
		},
		{
			Title:       "AI/ML Engineer",
			Category:    "Engineering",
			Location:    "Remote",
			Type:        "Full-time",
			Experience:  "2+ years",
			Description: "Work on cutting-edge AI solutions, develop machine learning models, and integrate them into our products.",
			Requirements: []string{
				"Master's degree in ML, AI, or related field",
				"2+ years experience with Python and ML frameworks",
				"Understanding of NLP and computer vision",
			},
			IsActive: true,
			AdminID:  adminID,
		},
		{
			Title:       "UI/UX Designer",
			Category:    "Design",
			Location:    "Remote",
			Type:        "Full-time",
			Experience:  "2+ years",
			Description: "Create beautiful, intuitive user interfaces and experiences for our web and mobile applications.",
			Requirements: []string{
				"2+ years experience in UI/UX design",
				"Proficiency in Figma or similar design tools",
				"Strong portfolio demonstrating web/mobile design",
			},
			IsActive: true,
			AdminID:  adminID,
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
