package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex;size:20;not null"`
	Password string `json:"-" gorm:"size:256;not null"`
	IsAdmin  bool   `json:"isAdmin" gorm:"default:false"`
}
