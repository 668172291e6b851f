// internal/models/checkout.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Checkout is the billed exit event, written at most once per vehicle (the
// unique index on VehicleID is the hard guarantee). The vehicle's intake
// fields are frozen here at commit time: a few denormalized columns for the
// ledger views plus the full intake document as jsonb. Later edits to the
// source vehicle never touch this row.
type Checkout struct {
	gorm.Model
	VehicleID uint `json:"vehicle_id" gorm:"uniqueIndex"`

	// Frozen intake fields
	RegistrationNumber string    `json:"registration_number"`
	OwnerName          string    `json:"owner_name"`
	VehicleType        string    `json:"vehicle_type"`
	InPlace            string    `json:"in_place"`
	InDate             time.Time `json:"in_date" gorm:"type:date"`
	VehicleDetails     []byte    `json:"vehicle_details" gorm:"type:jsonb"`

	// Billing
	CheckoutDate time.Time `json:"checkout_date"`
	CheckoutTime string    `json:"checkout_time"`
	DaysStayed   int       `json:"days_stayed"`
	PricePerDay  float64   `json:"price_per_day"`
	TotalAmount  float64   `json:"total_amount"`
}
