package models

import "gorm.io/gorm"

// RiskCategory is the AI Act classification of a system.
type RiskCategory string

const (
	CategoryUnacceptable RiskCategory = "UNACCEPTABLE"
	CategoryHigh         RiskCategory = "HIGH"
	CategoryLimited      RiskCategory = "LIMITED"
	CategoryMinimal      RiskCategory = "MINIMAL"
)

func (c RiskCategory) Valid() bool {
	switch c {
	case CategoryUnacceptable, CategoryHigh, CategoryLimited, CategoryMinimal:
		return true
	}
	return false
}

type AISystem struct {
	gorm.Model
	OrganizationID uint `gorm:"index;not null"`

	Name         string       `gorm:"size:255;not null"`
	Description  string       `gorm:"type:text"`
	Purpose      string       `gorm:"type:text"`
	RiskCategory RiskCategory `gorm:"type:varchar(20)"`

	GapAssessment          *GapAssessment
	RiskRegister           *RiskRegister
	TechnicalDocumentation *TechnicalDocumentation
	Governance             *GovernanceStructure
}
