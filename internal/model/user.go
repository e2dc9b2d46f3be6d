package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:64;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Confirmed    bool      `json:"confirmed" gorm:"default:false"`
	RoleID       uint      `json:"-" gorm:"index"`
	Name         string    `json:"name,omitempty" gorm:"size:64"`
	Location     string    `json:"location,omitempty" gorm:"size:64"`
	AboutMe      string    `json:"about_me,omitempty" gorm:"type:text"`
	MemberSince  time.Time `json:"member_since"`
	LastSeen     time.Time `json:"last_seen"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`

	// Relations
	Role     Role      `json:"-" gorm:"foreignKey:RoleID"`
	Posts    []Post    `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Followed []*User   `json:"-" gorm:"many2many:follows;joinForeignKey:FollowerID;joinReferences:FollowedID"`
}

// BeforeCreate stamps the registration timestamps.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if u.MemberSince.IsZero() {
		u.MemberSince = now
	}
	if u.LastSeen.IsZero() {
		u.LastSeen = now
	}
	return nil
}

// Can reports whether the user's role carries all bits of perm.
func (u *User) Can(perm int) bool {
	return u.Role.HasPermission(perm)
}

// IsAdministrator reports whether the user has admin rights.
func (u *User) IsAdministrator() bool {
	return u.Can(PermissionAdmin)
}
