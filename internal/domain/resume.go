package domain

import (
	"context"
	"time"
)

// DefaultResumeLimit is the per-user soft cap enforced on creation.
const DefaultResumeLimit = 3

type Resume struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	CategoryID *int64    `json:"job_tag,omitempty"`
	Position   *string   `json:"position,omitempty" validate:"omitempty,max=255"`
	Content    *string   `json:"content,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type ResumeRepository interface {
	Create(ctx context.Context, r *Resume) error
	GetByID(ctx context.Context, id int64) (*Resume, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]Resume, error)
	Delete(ctx context.Context, id int64) error
}

type ResumeUsecase interface {
	Create(ctx context.Context, p Principal, r *Resume) error
	List(ctx context.Context, p Principal) ([]Resume, error)
	Delete(ctx context.Context, p Principal, id int64) error
}
