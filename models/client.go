package models

import "gorm.io/gorm"

type Client struct {
	gorm.Model
	Name  string `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Phone string `json:"phone" gorm:"size:20"`
}
