package auth

import (
	"context"
	"log"

	"propertyhub/internal/domain"
)

// UserRepositoryInterface lists only the methods the auth service uses.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u *domain.User) error
}

type PasswordResetRepositoryInterface interface {
	Create(ctx context.Context, pr *domain.PasswordReset) error
	GetActiveByEmail(ctx context.Context, email string) (*domain.PasswordReset, error)
	MarkUsed(ctx context.Context, id string) error
}

// Mailer delivers reset codes. The default just logs them, which is
// enough for local development.
type Mailer interface {
	SendResetCode(email, code string) error
}

type LogMailer struct{}

func (LogMailer) SendResetCode(email, code string) error {
	log.Printf("password reset code for %s: %s", email, code)
	return nil
}
