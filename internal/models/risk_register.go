package models

import (
	"time"

	"ai-act-tracker/internal/certification"

	"gorm.io/gorm"
)

type RiskRegister struct {
	gorm.Model
	AISystemID uint `gorm:"uniqueIndex;not null"`

	Risks []Risk
}

type Risk struct {
	gorm.Model
	RiskRegisterID uint `gorm:"index;not null"`

	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"size:100"`
	Likelihood  int    // 1..5
	Impact      int    // 1..5

	RiskLevel              certification.RiskLevel         `gorm:"type:varchar(16);not null"`
	TreatmentDecision      certification.TreatmentDecision `gorm:"type:varchar(16)"`
	TreatmentJustification string                          `gorm:"type:text"`

	MitigationActions []MitigationAction
}

type MitigationAction struct {
	gorm.Model
	RiskID uint `gorm:"index;not null"`

	Description string                         `gorm:"type:text;not null"`
	Status      certification.MitigationStatus `gorm:"type:varchar(20);not null;default:'PLANNED'"`
	DueDate     *time.Time
	CompletedAt *time.Time
}
