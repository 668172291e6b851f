package models

import "gorm.io/gorm"

// User is an operator account. Password holds a bcrypt hash.
type User struct {
	gorm.Model
	Username string `json:"username" gorm:"unique"`
	Password string `json:"-"`
	Role     string `json:"role"` // "admin" or "operator"
}
