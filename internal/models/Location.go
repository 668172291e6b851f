// internal/models/location.go
package models

import (
	"gorm.io/gorm"
)

// Location is a storage yard. Vehicles reference it by name, not id, so
// reference data stays human-readable. Capacity is advisory only; intake is
// never refused on a full yard.
type Location struct {
	gorm.Model
	Name     string `json:"name" gorm:"unique" binding:"required"`
	Address  string `json:"address"`
	Capacity int    `json:"capacity"`
}
