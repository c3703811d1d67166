package models

import "gorm.io/gorm"

// Organization owns AI systems and users; every query is scoped by it.
type Organization struct {
	gorm.Model
	Name string `gorm:"size:255;not null;uniqueIndex"`
}
