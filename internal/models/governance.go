package models

import (
	"ai-act-tracker/internal/certification"

	"gorm.io/gorm"
)

type GovernanceStructure struct {
	gorm.Model
	AISystemID uint `gorm:"uniqueIndex;not null"`

	Roles []GovernanceRole
}

// GovernanceRole assigns an accountability role to a person.
type GovernanceRole struct {
	gorm.Model
	GovernanceStructureID uint `gorm:"index;not null"`

	RoleType   certification.RoleType `gorm:"type:varchar(40);not null"`
	PersonName string                 `gorm:"size:255;not null"`
	Email      string                 `gorm:"size:255"`
	IsActive   *bool                  `gorm:"default:true"`
}
