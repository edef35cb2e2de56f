package usecase

import (
	"context"

	"breachcheck/internal/domain/entity"
)

// CheckPasswordInput is the submitted identity. All fields are required.
type CheckPasswordInput struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CheckPasswordOutput is returned to the caller and never stored
type CheckPasswordOutput struct {
	Message     string              `json:"message"`
	Status      entity.BreachStatus `json:"status"`
	BreachCount int                 `json:"breach_count"`
}

// BreachCheckUsecase defines the password breach check use case
type BreachCheckUsecase interface {
	// CheckPassword looks the password up in the breach corpus, writes the audit
	// record and attempts to notify the user by SMS
	CheckPassword(ctx context.Context, input *CheckPasswordInput) (*CheckPasswordOutput, error)
}
