package models

import "time"

// Role is the closed set of account roles. Kept as a typed string so a
// mistyped role fails Valid() instead of silently passing equality checks.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
	RoleGuest Role = "guest"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleGuest:
		return true
	}
	return false
}

// CanManageBookings reports whether the role may operate on other guests'
// bookings. Admin implies staff capability.
func (r Role) CanManageBookings() bool {
	return r == RoleAdmin || r == RoleStaff
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50" json:"username"`
	Password  string    `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	Role      Role      `gorm:"size:20" json:"role"`
	FullName  string    `gorm:"column:fullname;size:255" json:"fullName"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
