package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string     `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	FullName  string     `gorm:"size:100;not null" json:"fullName"`
	Email     string     `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password  string     `gorm:"size:255;not null" json:"-"`
	Roles     []UserRole `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}

// UserRole is one granted role. Grants are additive and never revoked by the API.
type UserRole struct {
	UserID    string `gorm:"size:36;primaryKey"`
	Role      string `gorm:"size:20;primaryKey"`
	CreatedAt time.Time
}

func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Role)
	}
	return names
}
