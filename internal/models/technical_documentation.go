package models

import "gorm.io/gorm"

// TechnicalDocumentation holds the narrative sections required by Annex IV.
// CompletenessPercentage is recomputed whenever the sections are saved.
type TechnicalDocumentation struct {
	gorm.Model
	AISystemID uint `gorm:"uniqueIndex;not null"`

	IntendedUse        string `gorm:"type:text"`
	ForeseeableMisuse  string `gorm:"type:text"`
	SystemArchitecture string `gorm:"type:text"`
	TrainingData       string `gorm:"type:text"`
	ModelPerformance   string `gorm:"type:text"`
	ValidationTesting  string `gorm:"type:text"`
	HumanOversightDoc  string `gorm:"type:text"`
	Cybersecurity      string `gorm:"type:text"`

	CompletenessPercentage float64
}
