package models

import (
	"gorm.io/gorm"
)

// Component condition grades, shared by battery and tyre records.
const (
	ConditionGood    = "good"
	ConditionAverage = "average"
	ConditionBad     = "bad"
)

// KnownCondition reports whether s is one of the accepted grades.
func KnownCondition(s string) bool {
	return s == ConditionGood || s == ConditionAverage || s == ConditionBad
}

// BatteryDetail holds the single battery record of a vehicle.
type BatteryDetail struct {
	gorm.Model
	VehicleID uint   `json:"vehicle_id" gorm:"uniqueIndex"`
	Make      string `json:"make"`
	Number    string `json:"number"`
	Condition string `json:"condition" gorm:"column:condition_status"`
}
