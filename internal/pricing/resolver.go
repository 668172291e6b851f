// Package pricing resolves the daily storage rate for a (location, vehicle
// type) pair from the price table.
package pricing

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"yardkeeper/internal/apperr"
	"yardkeeper/internal/models"
)

// DefaultRatePerDay is the policy fallback when the price table has no entry
// for a pair. Pricing never fails a stay for lack of configuration.
const DefaultRatePerDay = 100.0

type Resolver struct {
	db          *gorm.DB
	defaultRate float64
}

// NewResolver builds a Resolver. defaultRate below zero selects
// DefaultRatePerDay.
func NewResolver(db *gorm.DB, defaultRate float64) *Resolver {
	if defaultRate < 0 {
		defaultRate = DefaultRatePerDay
	}
	return &Resolver{db: db, defaultRate: defaultRate}
}

// RateFor returns the configured rate for the exact pair, or the default
// rate when no entry exists. Names are matched against the reference tables,
// mirroring how vehicles reference locations and types.
func (r *Resolver) RateFor(location, vehicleType string) (float64, error) {
	var entry models.PriceEntry
	err := r.db.
		Joins("JOIN locations ON locations.id = price_entries.location_id").
		Joins("JOIN vehicle_types ON vehicle_types.id = price_entries.vehicle_type_id").
		Where("locations.name = ? AND vehicle_types.name = ?", location, vehicleType).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.defaultRate, nil
		}
		return 0, apperr.Storage("resolve rate", err)
	}
	return entry.Price, nil
}

// Entry is one (location, vehicle type, rate) triple for ReplaceAll.
type Entry struct {
	LocationID    uint    `json:"locationId"`
	VehicleTypeID uint    `json:"vehicleTypeId"`
	Price         float64 `json:"price"`
}

// ReplaceAll swaps the whole price table for the supplied triples in one
// transaction. On any failure the previous table survives intact.
func (r *Resolver) ReplaceAll(entries []Entry) error {
	if err := validateEntries(entries); err != nil {
		return err
	}

	tx := r.db.Begin()
	if tx.Error != nil {
		return apperr.Storage("begin price replace", tx.Error)
	}
	if err := tx.Unscoped().Where("1 = 1").Delete(&models.PriceEntry{}).Error; err != nil {
		tx.Rollback()
		return apperr.Storage("clear price table", err)
	}
	if len(entries) > 0 {
		rows := make([]models.PriceEntry, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, models.PriceEntry{
				LocationID:    e.LocationID,
				VehicleTypeID: e.VehicleTypeID,
				Price:         e.Price,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			tx.Rollback()
			return apperr.Storage("insert price table", err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return apperr.Storage("commit price replace", err)
	}
	return nil
}

// List returns the whole price table for the settings screen.
func (r *Resolver) List() ([]models.PriceEntry, error) {
	var entries []models.PriceEntry
	if err := r.db.Find(&entries).Error; err != nil {
		return nil, apperr.Storage("list prices", err)
	}
	return entries, nil
}

func validateEntries(entries []Entry) error {
	seen := map[[2]uint]bool{}
	for i, e := range entries {
		if e.LocationID == 0 || e.VehicleTypeID == 0 {
			return apperr.Invalid("prices", fmt.Sprintf("entry %d: location and vehicle type are required", i))
		}
		if e.Price < 0 {
			return apperr.Invalid("prices", fmt.Sprintf("entry %d: rate must not be negative", i))
		}
		pair := [2]uint{e.LocationID, e.VehicleTypeID}
		if seen[pair] {
			return apperr.Invalid("prices", fmt.Sprintf("entry %d: duplicate pair", i))
		}
		seen[pair] = true
	}
	return nil
}
