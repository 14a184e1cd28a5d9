package models

import "time"

type Brand struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:100;not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	IsDeleted   bool   `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
