package domain

import (
	"context"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
}

type AuthUsecase interface {
	// ResolvePrincipal loads the user behind a verified token subject.
	ResolvePrincipal(ctx context.Context, userID int64) (*Principal, error)
}
