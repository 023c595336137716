// Package policy decides who may create and modify posts. Two policies
// exist: the legacy one where a single privileged account manages all posts,
// and the newer one where the post's owner (or the privileged account) does.
package policy

import (
	"github.com/blog-post/api-go/models"
)

type PostPolicy interface {
	// CanCreate reports whether the principal may create posts at all.
	CanCreate(principalID uint) bool
	// CanModify reports whether the principal may update or delete the post.
	CanModify(principalID uint, post *models.Post) bool
	Name() string
}

const (
	SingleAdminPolicy = "single_admin"
	OwnerPolicy       = "owner"
)

// SingleAdmin grants post management to one designated account only.
type SingleAdmin struct {
	AdminID uint
}

func (p SingleAdmin) CanCreate(principalID uint) bool {
	return principalID == p.AdminID
}

func (p SingleAdmin) CanModify(principalID uint, post *models.Post) bool {
	return principalID == p.AdminID
}

func (p SingleAdmin) Name() string { return SingleAdminPolicy }

// OwnerOrAdmin grants post management to the post's owner and to the
// designated admin account.
type OwnerOrAdmin struct {
	AdminID uint
}

func (p OwnerOrAdmin) CanCreate(principalID uint) bool {
	return true
}

func (p OwnerOrAdmin) CanModify(principalID uint, post *models.Post) bool {
	return principalID == post.UserID || principalID == p.AdminID
}

func (p OwnerOrAdmin) Name() string { return OwnerPolicy }

// FromName builds the policy selected by name, defaulting to OwnerOrAdmin
// for anything unrecognized.
func FromName(name string, adminID uint) PostPolicy {
	if name == SingleAdminPolicy {
		return SingleAdmin{AdminID: adminID}
	}
	return OwnerOrAdmin{AdminID: adminID}
}
