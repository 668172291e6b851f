package models

import (
	"gorm.io/gorm"
)

// VehicleImage points at an uploaded photo. ImageURL is an opaque locator
// into the upload store; the core never inspects the blob.
type VehicleImage struct {
	gorm.Model
	VehicleID uint   `json:"vehicle_id" gorm:"index"`
	ImageURL  string `json:"image_url"`
	ImageName string `json:"image_name"`
}
