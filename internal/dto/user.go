package dto

import "github.com/hirebase/job-board-api/internal/models"

// UserDTO represents a user in API responses
type UserDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EmployerDTO represents an employer profile in API responses
type EmployerDTO struct {
	ID       uint64 `json:"id"`
	UserID   uint64 `json:"user_id"`
	Name     string `json:"name"`
	LogoPath string `json:"logo_path"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// ToEmployerDTO converts an Employer model to EmployerDTO
func ToEmployerDTO(employer models.Employer) EmployerDTO {
	return EmployerDTO{
		ID:       employer.ID,
		UserID:   employer.UserID,
		Name:     employer.Name,
		LogoPath: employer.LogoPath,
	}
}
