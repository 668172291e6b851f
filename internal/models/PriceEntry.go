package models

import (
	"gorm.io/gorm"
)

// PriceEntry maps (location, vehicle type) to a daily storage rate. At most
// one entry exists per pair; the table is only ever replaced wholesale.
type PriceEntry struct {
	gorm.Model
	LocationID    uint    `json:"location_id" gorm:"index:idx_price_pair,unique"`
	VehicleTypeID uint    `json:"vehicle_type_id" gorm:"index:idx_price_pair,unique"`
	Price         float64 `json:"price"`
}
