package models

import (
	"ai-act-tracker/internal/certification"

	"gorm.io/gorm"
)

type GapAssessment struct {
	gorm.Model
	AISystemID uint `gorm:"uniqueIndex;not null"`

	Requirements []Requirement
}

// Requirement is one obligation of the gap assessment, usually copied from
// the requirement catalog.
type Requirement struct {
	gorm.Model
	GapAssessmentID uint `gorm:"index;not null"`

	Article  string                          `gorm:"size:64"`
	Title    string                          `gorm:"size:255;not null"`
	Category string                          `gorm:"size:100;not null"`
	Status   certification.RequirementStatus `gorm:"type:varchar(20);not null;default:'NOT_STARTED'"`
	Notes    string                          `gorm:"type:text"`
}
