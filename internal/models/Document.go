package models

import (
	"gorm.io/gorm"
)

// Document is one checklist row: whether a given document/accessory was
// present at intake. Every vehicle carries exactly one row per tag in
// DocumentTags.
type Document struct {
	gorm.Model
	VehicleID   uint   `json:"vehicle_id" gorm:"index"`
	DocType     string `json:"doc_type"`
	IsAvailable bool   `json:"is_available"`
}

// DocumentTags is the canonical checklist vocabulary. A stored checklist
// that covers less or more than this set is a data-integrity bug.
var DocumentTags = []string{
	"registrationCardBook",
	"tcBook",
	"insuranceCertificate",
	"tyreReport",
	"tarpaulin",
	"toolKit",
	"radioStereo",
	"ropeRaasi",
}
