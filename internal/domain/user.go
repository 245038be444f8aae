package domain

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

type User struct {
	ID           int32     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedOn    time.Time `json:"createdOn"`
	UpdatedOn    time.Time `json:"updatedOn"`
}

// Identity is the authenticated caller attached to a request. The engine
// trusts it; credential verification happens at the HTTP boundary.
type Identity struct {
	UserID int32
	Role   Role
}

func (id Identity) Valid() bool {
	return id.UserID > 0 && (id.Role == RoleAdmin || id.Role == RoleCustomer)
}

// CanActOn is the single authorization check applied before engine calls:
// admins may act on any resource, customers only on their own.
func CanActOn(role Role, resourceOwnerID, requesterID int32) bool {
	return role == RoleAdmin || resourceOwnerID == requesterID
}
