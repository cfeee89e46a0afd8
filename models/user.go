package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	Email        string `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string `gorm:"size:72" json:"-"`
	FirstName    string `gorm:"size:64" json:"first_name"`
	LastName     string `gorm:"size:64" json:"last_name"`
	ProfileImage string `gorm:"size:255" json:"profile_image"`
	Balance      int64  `json:"balance"`

	Transactions []Transaction `gorm:"foreignKey:UserID"`
}
