// internal/models/vehicle.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Vehicle status values. checked_out is terminal; the only writer of the
// transition is the checkout engine.
const (
	StatusActive     = "active"
	StatusCheckedOut = "checked_out"
)

// Vehicle is one intake record. Child rows (documents, battery, tyres,
// images) hang off VehicleID and are written in the same transaction as the
// vehicle itself.
type Vehicle struct {
	gorm.Model
	AgreementNo        string    `json:"agreement_no"`
	FinancierName      string    `json:"financier_name"`
	OwnerName          string    `json:"owner_name"`
	Address            string    `json:"address"`
	RegistrationNumber string    `json:"registration_number" gorm:"index"`
	VehicleType        string    `json:"vehicle_type"` // name reference into vehicle_types
	Make               string    `json:"make"`
	ModelName          string    `json:"model" gorm:"column:model_name"`
	Year               string    `json:"year"`
	EngineNo           string    `json:"engine_no"`
	ChassisNo          string    `json:"chassis_no"`
	KmsRun             int       `json:"kms_run"`
	InDate             time.Time `json:"in_date" gorm:"type:date"`
	InTime             string    `json:"in_time"`
	InPlace            string    `json:"in_place"` // name reference into locations
	AdditionalDetails  string    `json:"additional_details"`
	Status             string    `json:"status" gorm:"default:active;index"`
}
