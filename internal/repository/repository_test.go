package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hirebase/job-board-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Employer{},
		&models.Job{},
		&models.Tag{},
		&models.JobTag{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func seedEmployer(t *testing.T, db *gorm.DB, email string) *models.Employer {
	t.Helper()

	user := &models.User{Name: "Owner", Email: email, PasswordHash: "hashedpassword"}
	require.NoError(t, db.Create(user).Error)

	employer := &models.Employer{UserID: user.ID, Name: "Acme", LogoPath: "/uploads/logos/acme.png"}
	require.NoError(t, db.Create(employer).Error)
	return employer
}

func seedJob(t *testing.T, db *gorm.DB, employerID uint64, title string) *models.Job {
	t.Helper()

	job := &models.Job{
		EmployerID: employerID,
		Title:      title,
		Salary:     "$50k",
		Location:   "NYC",
		Schedule:   models.ScheduleFullTime,
		URL:        "http://x.com",
	}
	require.NoError(t, db.Create(job).Error)
	return job
}
