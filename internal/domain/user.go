package domain

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleOperator UserRole = "OPERATOR"
)

// User is an operator account. Its username is the actor identifier stamped
// onto every mutating ledger operation.
type User struct {
	ID           int32     `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedOn    time.Time `json:"created_on"`
}
