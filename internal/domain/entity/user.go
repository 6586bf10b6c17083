package entity

import "time"

// Roles de operador.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleOperator = "operator"
)

// User operador del PDA (pmu100).
type User struct {
	UserID       string
	Saupj        string
	UserName     string
	PasswordHash string // bcrypt
	Role         string
	UseYN        string
	CreatedAt    time.Time
}

// Active usuario habilitado.
func (u *User) Active() bool { return u != nil && u.UseYN == "Y" }
