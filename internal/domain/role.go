package domain

import (
	"fmt"
	"slices"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleHR    Role = "hr"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleHR, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
	}
}

// Principal is the authenticated caller as supplied by the identity layer.
// CompanyIDs lists the companies an HR principal is bound to.
type Principal struct {
	ID         int64   `json:"id"`
	Role       Role    `json:"role"`
	CompanyIDs []int64 `json:"company_ids,omitempty"`
}

func (p Principal) IsBoundTo(companyID int64) bool {
	return slices.Contains(p.CompanyIDs, companyID)
}

// Capability checks, one per guarded operation.

func CanSubmit(p Principal) bool {
	return p.Role == RoleUser
}

func CanTransition(p Principal) bool {
	return p.Role == RoleHR || p.Role == RoleAdmin
}

func CanWithdraw(p Principal, app *Application) bool {
	return p.Role == RoleUser && app.UserID == p.ID
}

func CanViewApplication(p Principal, app *Application) bool {
	switch p.Role {
	case RoleAdmin:
		return true
	case RoleHR:
		return p.IsBoundTo(app.CompanyID)
	default:
		return app.UserID == p.ID
	}
}

func CanManageVacancy(p Principal, companyID int64) bool {
	switch p.Role {
	case RoleAdmin:
		return true
	case RoleHR:
		return p.IsBoundTo(companyID)
	default:
		return false
	}
}

func CanBrowseApplications(p Principal) bool {
	return p.Role == RoleHR || p.Role == RoleAdmin
}

func CanReviewCompany(p Principal) bool {
	return p.Role == RoleUser
}

// CanSeeNotification reports whether p is the recipient of n: the applicant for
// decisions, an HR bound to the hiring company for new submissions.
func CanSeeNotification(p Principal, n *Notification) bool {
	switch p.Role {
	case RoleAdmin:
		return true
	case RoleHR:
		return n.Status == StatusSubmitted && p.IsBoundTo(n.CompanyID)
	default:
		return n.Status.IsTerminal() && n.UserID == p.ID
	}
}
