package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobboard/internal/config"
	"jobboard/internal/db"
	"jobboard/internal/model"
	"jobboard/internal/repository"
)

const (
	adminEmail    = "admin@jobboard.local"
	adminPassword = "admin123"
)

type seedJob struct {
	title    string
	location string
	jobType  string
	tags     []string
}

type seedEmployer struct {
	name         string
	website      string
	contactEmail string
	staffEmail   string
	jobs         []seedJob
}

var seedEmployers = []seedEmployer{
	{
		name:         "Acme Robotics",
		website:      "https://acme-robotics.example",
		contactEmail: "jobs@acme-robotics.example",
		staffEmail:   "hr@acme-robotics.example",
		jobs: []seedJob{
			{title: "Backend Engineer", location: "Berlin", jobType: model.JobTypeFullTime, tags: []string{"go", "mysql"}},
			{title: "SRE", location: "Remote", jobType: model.JobTypeRemote, tags: []string{"kubernetes", "terraform"}},
		},
	},
	{
		name:         "Northwind Labs",
		website:      "https://northwind.example",
		contactEmail: "careers@northwind.example",
		staffEmail:   "talent@northwind.example",
		jobs: []seedJob{
			{title: "Data Analyst", location: "Amsterdam", jobType: model.JobTypeContract, tags: []string{"sql", "python"}},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Employer{},
		&model.Job{},
		&model.Candidate{},
		&model.Resume{},
		&model.Application{},
		&model.Notification{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	employerRepo := repository.NewEmployerRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)

	if err := seedAdmin(ctx, userRepo); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	created, err := seedBoard(ctx, userRepo, employerRepo, jobRepo)
	if err != nil {
		log.Fatalf("Failed to seed employers: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Jobs created: %d", created)
	log.Printf("  - Admin login: %s / %s", adminEmail, adminPassword)
}

// seedAdmin creates the bootstrap admin user unless one already exists.
func seedAdmin(ctx context.Context, users repository.UserRepository) error {
	if existing, err := users.FindByEmail(ctx, adminEmail); err == nil && existing != nil {
		log.Println("Admin user already present, skipping")
		return nil
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		return err
	}
	return users.Create(ctx, &model.User{
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		Name:         "Board Admin",
	})
}

// seedBoard creates demo employers, one staff login per employer, and their
// job postings. Existing staff emails are taken as a marker that seeding
// already ran for that employer.
func seedBoard(
	ctx context.Context,
	users repository.UserRepository,
	employers repository.EmployerRepository,
	jobs repository.JobRepository,
) (int, error) {
	created := 0
	for _, seed := range seedEmployers {
		if existing, err := users.FindByEmail(ctx, seed.staffEmail); err == nil && existing != nil {
			log.Printf("Employer %q already seeded, skipping", seed.name)
			continue
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		employer := &model.Employer{
			Name:         seed.name,
			Website:      seed.website,
			ContactEmail: seed.contactEmail,
		}
		if err := employers.Create(ctx, employer); err != nil {
			return created, err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("employer123"), 10)
		if err != nil {
			return created, err
		}
		staff := &model.User{
			Email:        seed.staffEmail,
			PasswordHash: string(hash),
			Role:         model.RoleEmployer,
			Name:         seed.name + " HR",
			EmployerID:   &employer.ID,
		}
		if err := users.Create(ctx, staff); err != nil {
			return created, err
		}

		for _, j := range seed.jobs {
			job := &model.Job{
				EmployerID: employer.ID,
				Title:      j.title,
				Location:   j.location,
				Type:       j.jobType,
				Tags:       j.tags,
				IsActive:   true,
			}
			if err := jobs.Create(ctx, job); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}
