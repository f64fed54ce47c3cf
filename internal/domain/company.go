package domain

import (
	"context"
	"time"
)

type CompanyMember struct {
	CompanyID int64     `json:"company_id"`
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	JoinedAt  time.Time `json:"joined_at"`
}

type CompanyReview struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"company_id"`
	UserID    int64     `json:"user_id"`
	Comment   string    `json:"comment" validate:"required,max=2000,no_emoji"`
	CreatedAt time.Time `json:"created_at"`
}

type CompanyRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
	// AddMember is a no-op when the user is already on the roster.
	AddMember(ctx context.Context, companyID, userID int64) error
	ListMembers(ctx context.Context, companyID int64) ([]CompanyMember, error)
	HRCompanyIDs(ctx context.Context, userID int64) ([]int64, error)
	CreateReview(ctx context.Context, r *CompanyReview) error
	ListReviews(ctx context.Context, companyID int64) ([]CompanyReview, error)
}

type CompanyUsecase interface {
	Members(ctx context.Context, p Principal, companyID int64) ([]CompanyMember, error)
	AddReview(ctx context.Context, p Principal, companyID int64, comment string) (*CompanyReview, error)
	Reviews(ctx context.Context, companyID int64) ([]CompanyReview, error)
}
