package domain

import (
	"errors"
	"fmt"
)

// OwnerType discriminates who controls an event and its availability rules
type OwnerType string

const (
	OwnerTypeUser         OwnerType = "user"
	OwnerTypeOrganization OwnerType = "organization"
)

// ErrInvalidOwner is returned when an owner reference is malformed
// (unknown type, non-positive ID, or a storage row violating the
// exactly-one-of user/organization constraint)
var ErrInvalidOwner = errors.New("domain: invalid owner reference")

// OwnerRef identifies the owner of an event: a user XOR an organization.
// Modeled as a tagged union instead of two nullable IDs so that the
// "exactly one set" constraint cannot be violated in memory.
type OwnerRef struct {
	Type OwnerType
	ID   int64
}

// UserOwner builds an owner reference for a personal event
func UserOwner(userID int64) OwnerRef {
	return OwnerRef{Type: OwnerTypeUser, ID: userID}
}

// OrganizationOwner builds an owner reference for an organizational event
func OrganizationOwner(orgID int64) OwnerRef {
	return OwnerRef{Type: OwnerTypeOrganization, ID: orgID}
}

// NewOwnerRef builds an owner reference from nullable storage columns.
// Exactly one of userID/organizationID must be non-nil.
func NewOwnerRef(userID, organizationID *int64) (OwnerRef, error) {
	switch {
	case userID != nil && organizationID != nil:
		return OwnerRef{}, fmt.Errorf("%w: both user and organization set", ErrInvalidOwner)
	case userID != nil:
		return UserOwner(*userID), nil
	case organizationID != nil:
		return OrganizationOwner(*organizationID), nil
	default:
		return OwnerRef{}, fmt.Errorf("%w: neither user nor organization set", ErrInvalidOwner)
	}
}

// IsUser returns true if the owner is a user
func (o OwnerRef) IsUser() bool {
	return o.Type == OwnerTypeUser
}

// IsOrganization returns true if the owner is an organization
func (o OwnerRef) IsOrganization() bool {
	return o.Type == OwnerTypeOrganization
}

// Validate checks that the reference has a known type and a positive ID
func (o OwnerRef) Validate() error {
	if o.Type != OwnerTypeUser && o.Type != OwnerTypeOrganization {
		return fmt.Errorf("%w: unknown owner type %q", ErrInvalidOwner, o.Type)
	}
	if o.ID <= 0 {
		return fmt.Errorf("%w: non-positive owner id %d", ErrInvalidOwner, o.ID)
	}
	return nil
}

// String returns a stable "type:id" representation, usable in cache keys and logs
func (o OwnerRef) String() string {
	return fmt.Sprintf("%s:%d", o.Type, o.ID)
}
