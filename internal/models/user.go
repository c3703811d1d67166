package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleOfficer UserRole = "officer"
	RoleViewer  UserRole = "viewer"
)

type User struct {
	gorm.Model
	OrganizationID uint
	Organization   Organization

	Username     string   `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null"`
}
