package models

import (
	"time"
)

type Category struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"size:100;not null;index"`
	Slug         string `gorm:"size:120;not null;index"`
	IsTechnical  bool   `gorm:"not null;default:false"`
	DisplayOrder int    `gorm:"not null;default:0"`
	IsDeleted    bool   `gorm:"not null;default:false;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (c Category) Kind() string {
	if c.IsTechnical {
		return "Technical"
	}
	return "Standard"
}
