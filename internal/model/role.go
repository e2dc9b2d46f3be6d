package model

// Permission bits combined into a role's bitmask.
const (
	PermissionFollow   = 0x01
	PermissionComment  = 0x02
	PermissionWrite    = 0x04
	PermissionModerate = 0x08
	PermissionAdmin    = 0x10
)

// Role groups users under a named permission bitmask. Exactly one role is
// flagged as the default for new registrations.
type Role struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;size:64;not null"`
	IsDefault   bool   `json:"default" gorm:"column:is_default;default:false;index"`
	Permissions int    `json:"permissions" gorm:"not null;default:0"`

	// Relations
	Users []User `json:"-" gorm:"foreignKey:RoleID"`
}

// HasPermission reports whether the role carries all bits of perm.
func (r *Role) HasPermission(perm int) bool {
	return r.Permissions&perm == perm
}

// DefaultRoles returns the fixed role table seeded at startup.
func DefaultRoles() []Role {
	return []Role{
		{
			Name:        "User",
			IsDefault:   true,
			Permissions: PermissionFollow | PermissionComment | PermissionWrite,
		},
		{
			Name:        "Moderator",
			Permissions: PermissionFollow | PermissionComment | PermissionWrite | PermissionModerate,
		},
		{
			Name: "Administrator",
			Permissions: PermissionFollow | PermissionComment | PermissionWrite |
				PermissionModerate | PermissionAdmin,
		},
	}
}
