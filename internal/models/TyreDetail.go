package models

import (
	"gorm.io/gorm"
)

// TyreDetail is one of exactly five tyre records per vehicle, one per
// position in TyrePositions.
type TyreDetail struct {
	gorm.Model
	VehicleID uint   `json:"vehicle_id" gorm:"index"`
	Position  string `json:"position"`
	Make      string `json:"make"`
	Number    string `json:"number"`
	Condition string `json:"condition" gorm:"column:condition_status"`
}

// TyrePositions is the canonical position set. Stepney is the spare.
var TyrePositions = []string{
	"Front Left",
	"Front Right",
	"Rear Left",
	"Rear Right",
	"Stepney",
}
