package models

import (
	"gorm.io/gorm"
)

// VehicleType is a named category (Car, Truck, ...) referenced by vehicles
// and by the price table.
type VehicleType struct {
	gorm.Model
	Name string `json:"name" gorm:"unique" binding:"required"`
}
