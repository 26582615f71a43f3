package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hirebase/job-board-api/internal/dto"
	"github.com/hirebase/job-board-api/internal/models"
	"github.com/hirebase/job-board-api/internal/repository"
	"github.com/hirebase/job-board-api/internal/utils"
)

func setupJobService(t *testing.T) (*JobService, *gorm.DB) {
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

	svc := NewJobService(
		repository.NewJobRepository(db),
		repository.NewTagRepository(db),
		repository.NewEmployerRepository(db),
	)
	return svc, db
}

func createTestEmployer(t *testing.T, db *gorm.DB, email string) *models.Employer {
	t.Helper()

	user := &models.User{
		Name:         "Owner",
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, db.Create(user).Error)

	employer := &models.Employer{
		UserID:   user.ID,
		Name:     "Acme",
		LogoPath: "/uploads/logos/acme.png",
	}
	require.NoError(t, db.Create(employer).Error)
	return employer
}

func validCreateJobInput(userID uint64) CreateJobInput {
	return CreateJobInput{
		UserID:   userID,
		Title:    "Dev",
		Salary:   "$100k",
		Location: "Remote",
		Schedule: "Full Time",
		URL:      "http://x.com",
		Tags:     "js,go",
	}
}

func defaultPage() utils.PaginationParams {
	return utils.PaginationParams{Page: 1, Limit: 20, Offset: 0}
}

func TestJobService_CreateJob_WithTags(t *testing.T) {
	svc, db := setupJobService(t)
	employer := createTestEmployer(t, db, "a@b.com")

	job, err := svc.CreateJob(validCreateJobInput(employer.UserID))
	require.NoError(t, err)
	require.Equal(t, employer.ID, job.EmployerID)
	require.False(t, job.Featured)

	view := dto.ToJobDTO(*job)
	require.Equal(t, "Acme", view.EmployerName)
	require.Len(t, view.Tags, 2)
	require.Equal(t, "go", view.Tags[0].Name)
	require.Equal(t, "js", view.Tags[1].Name)
}

func TestJobService_CreateJob_NormalizesAndDeduplicatesTags(t *testing.T) {
	svc, db := setupJobService(t)
	employer := createTestEmployer(t, db, "a@b.com")

	require.NoError(t, db.Create(&models.Tag{Name: "go"}).Error)

	input := validCreateJobInput(employer.UserID)
	input.Tags = "Go, go, GO"

	job, err := svc.CreateJob(input)
	require.NoError(t, err)

	var links []models.JobTag
	require.NoError(t, db.Where("job_id = ?", job.ID).Find(&links).Error)
	require.Len(t, links, 1)

	var tagCount int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&tagCount).Error)
	require.Equal(t, int64(1), tagCount)
}

func TestJobService_CreateJob_DiscardsEmptyTagSegments(t *testing.T) {
	svc, db := setupJobService(t)
	employer := createTestEmployer(t, db, "a@b.com")

	input := validCreateJobInput(employer.UserID)
	input.Tags = " js , , go ,"

	job, err := svc.CreateJob(input)
	require.NoError(t, err)

	var links []models.JobTag
	require.NoError(t, db.Where("job_id = ?", job.ID).Find(&links).Error)
	require.Len(t, links, 2)
}

func TestJobService_CreateJob_RejectsInvalidSchedule(t *testing.T) {
	svc, db := setupJobService(t)
	employer := createTestEmployer(t, db, "a@b.com")

	input := validCreateJobInput(employer.UserID)
	input.Schedule = "Contract"

	_, err := svc.CreateJob(input)
	require.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestJobService_CreateJob_WithoutEmployerProfile(t *testing.T) {
	svc, db := setupJobService(t)

	user := &models.User{Name: "No Profile", Email: "x@y.com", PasswordHash: "hashedpassword"}
	require.NoError(t, db.Create(user).Error)

	_, err := svc.CreateJob(validCreateJobInput(user.ID))
	require.ErrorIs(t, err, ErrEmployerNotFound)
}

func TestJobService_SearchJobs(t *testing.T) {
	svc, db := setupJobService(t)
	employer := createTestEmployer(t, db, "a@b.com")

	for _, title := range []string{"Head Cook", "Cookware Sales", "Bartender"} {
		require.NoError(t, db.Create(&models.Job{
			EmployerID: employer.ID,
			Title:      title,
			Salary:     "$50k",
			Location:   "NYC",
			Schedule:   models.ScheduleFullTime,
			URL:        "http://x.com",
		}).Error)
	}

	jobs, total, err := svc.SearchJobs("cook", defaultPage())
	require.NoError(t, err)
	require.Equal(t, int64(2), total)

	titles := make([]string, len(jobs))
	for i, job := range jobs {
		titles[i] = job.Title
	}
	require.ElementsMatch(t, []string{"Head Cook", "Cookware Sales"}, titles)
}

func TestJobService_SearchJobs_RequiresQuery(t *testing.T) {
	svc, _ := setupJobService(t)

	_, _, err := svc.SearchJobs("", defaultPage())
	require.ErrorIs(t, err, ErrSearchQueryRequired)

	_, _, err = svc.SearchJobs("   ", defaultPage())
	require.ErrorIs(t, err, ErrSearchQueryRequired)
}

func TestJobService_ListJobs_SplitsFeaturedAndOrdersNewestFirst(t *testing.T) {
	svc, db := setupJobService(t)
	employer := createTestEmployer(t, db, "a@b.com")

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seed := []struct {
		title    string
		featured bool
		offset   time.Duration
	}{
		{"Oldest", false, 0},
		{"Middle", false, time.Hour},
		{"Promoted", true, 2 * time.Hour},
		{"Newest", false, 3 * time.Hour},
	}
	for _, s := range seed {
		require.NoError(t, db.Create(&models.Job{
			EmployerID: employer.ID,
			Title:      s.title,
			Salary:     "$50k",
			Location:   "NYC",
			Schedule:   models.ScheduleFullTime,
			URL:        "http://x.com",
			Featured:   s.featured,
			CreatedAt:  base.Add(s.offset),
		}).Error)
	}

	listing, err := svc.ListJobs(defaultPage())
	require.NoError(t, err)
	require.Equal(t, int64(4), listing.Total)

	require.Len(t, listing.Featured, 1)
	require.Equal(t, "Promoted", listing.Featured[0].Title)

	require.Len(t, listing.Jobs, 3)
	require.Equal(t, "Newest", listing.Jobs[0].Title)
	require.Equal(t, "Middle", listing.Jobs[1].Title)
	require.Equal(t, "Oldest", listing.Jobs[2].Title)
}

func TestJobService_JobsByTag(t *testing.T) {
	svc, db := setupJobService(t)
	employer := createTestEmployer(t, db, "a@b.com")

	input := validCreateJobInput(employer.UserID)
	input.Tags = "go"
	job, err := svc.CreateJob(input)
	require.NoError(t, err)

	jobs, err := svc.JobsByTag("go")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	require.Equal(t, job.ID, jobs[0].ID)

	// Tag lookup normalizes casing the same way tag creation does
	jobs, err = svc.JobsByTag("GO")
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	_, err = svc.JobsByTag("rust")
	require.ErrorIs(t, err, ErrTagNotFound)
}

func TestParseTagNames(t *testing.T) {
	require.Equal(t, []string{"go", "js"}, parseTagNames("Go, go, GO, js"))
	require.Equal(t, []string{"devops"}, parseTagNames("  DevOps  "))
	require.Nil(t, parseTagNames(" , ,, "))
	require.Nil(t, parseTagNames(""))
}
