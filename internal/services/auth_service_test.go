package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hirebase/job-board-api/internal/models"
	"github.com/hirebase/job-board-api/internal/repository"
)

func setupAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Employer{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewAuthService(repository.NewUserRepository(db)), db
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:         "Ada",
		Email:        "ada@example.com",
		Password:     "longpass1",
		EmployerName: "Acme",
		LogoPath:     "/uploads/logos/acme.png",
	}
}

func TestAuthService_Register_CreatesUserAndEmployerTogether(t *testing.T) {
	svc, db := setupAuthService(t)

	user, err := svc.Register(validRegisterInput())
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, "ada@example.com", user.Email)
	require.NotEqual(t, "longpass1", user.PasswordHash)

	var employer models.Employer
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&employer).Error)
	require.Equal(t, "Acme", employer.Name)
	require.Equal(t, "/uploads/logos/acme.png", employer.LogoPath)
}

func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	svc, _ := setupAuthService(t)

	input := validRegisterInput()
	input.Email = "  Ada@Example.COM "

	user, err := svc.Register(input)
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", user.Email)
}

func TestAuthService_Register_PasswordLengthBoundary(t *testing.T) {
	svc, _ := setupAuthService(t)

	input := validRegisterInput()
	input.Password = "1234567"
	_, err := svc.Register(input)
	require.ErrorIs(t, err, ErrPasswordTooShort)

	input.Password = "12345678"
	_, err = svc.Register(input)
	require.NoError(t, err)
}

func TestAuthService_Register_RejectsMalformedEmail(t *testing.T) {
	svc, _ := setupAuthService(t)

	for _, email := range []string{"not-an-email", "a@b", "a b@c.com", "@d.com"} {
		input := validRegisterInput()
		input.Email = email
		_, err := svc.Register(input)
		require.ErrorIs(t, err, ErrInvalidEmail, "email %q should be rejected", email)
	}
}

func TestAuthService_Register_DuplicateEmailAnyCasing(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register(validRegisterInput())
	require.NoError(t, err)

	input := validRegisterInput()
	input.Email = "ADA@EXAMPLE.COM"
	_, err = svc.Register(input)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Login_CaseInsensitiveEmail(t *testing.T) {
	svc, _ := setupAuthService(t)

	registered, err := svc.Register(validRegisterInput())
	require.NoError(t, err)

	user, err := svc.Login(LoginInput{Email: "Ada@Example.Com", Password: "longpass1"})
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
}

func TestAuthService_Login_RejectsBadCredentials(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register(validRegisterInput())
	require.NoError(t, err)

	_, err = svc.Login(LoginInput{Email: "ada@example.com", Password: "longpass1x"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email yields the same error as a wrong password
	_, err = svc.Login(LoginInput{Email: "nobody@example.com", Password: "longpass1"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_PasswordHashRoundTrip(t *testing.T) {
	svc, _ := setupAuthService(t)

	user, err := svc.Register(validRegisterInput())
	require.NoError(t, err)

	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("longpass1")))
	require.Error(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("longpass1x")))
}
