// Package checkout owns the one-way active -> checked_out transition and the
// exit bill that rides along with it. Quotes are free of side effects;
// Commit is the only writer of vehicle status anywhere in the system.
package checkout

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"yardkeeper/internal/apperr"
	"yardkeeper/internal/models"
	"yardkeeper/internal/store"
)

// VehicleReader is the slice of the record store the engine needs.
type VehicleReader interface {
	SearchByPlate(plate string) (*store.Record, error)
	Get(id uint) (*store.Record, error)
}

// RateResolver prices a (location, vehicle type) pair per day.
type RateResolver interface {
	RateFor(location, vehicleType string) (float64, error)
}

type Engine struct {
	db       *gorm.DB
	vehicles VehicleReader
	rates    RateResolver
}

func NewEngine(db *gorm.DB, vehicles VehicleReader, rates RateResolver) *Engine {
	return &Engine{db: db, vehicles: vehicles, rates: rates}
}

// Quote is a non-persisted exit bill proposal. Safe to recompute and
// discard any number of times.
type Quote struct {
	VehicleID    uint          `json:"vehicle_id"`
	Vehicle      *store.Record `json:"vehicle"`
	DaysStayed   int           `json:"days_stayed"`
	PricePerDay  float64       `json:"price_per_day"`
	TotalAmount  float64       `json:"total_amount"`
	CheckoutDate time.Time     `json:"checkout_date"`
	CheckoutTime string        `json:"checkout_time"`
}

// Quote prices the stay of the vehicle with the given plate as of now.
// No writes happen here.
func (e *Engine) Quote(plate string, now time.Time) (*Quote, error) {
	rec, err := e.vehicles.SearchByPlate(plate)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.ErrNotFound
	}
	if rec.Status != models.StatusActive {
		return nil, apperr.ErrAlreadyCheckedOut
	}

	rate, err := e.rates.RateFor(rec.InPlace, rec.VehicleType)
	if err != nil {
		return nil, err
	}

	days := DaysStayed(rec.InDate, now)
	return &Quote{
		VehicleID:    rec.ID,
		Vehicle:      rec,
		DaysStayed:   days,
		PricePerDay:  rate,
		TotalAmount:  float64(days) * rate,
		CheckoutDate: now,
		CheckoutTime: now.Format("15:04"),
	}, nil
}

// Commit writes the checkout row with the vehicle frozen inside it and flips
// the vehicle to checked_out, all in one transaction. The status flip is a
// compare-and-swap: when two operators race, the second UPDATE matches zero
// rows and the loser gets ErrAlreadyCheckedOut with nothing written.
func (e *Engine) Commit(vehicleID uint, q Quote) (*models.Checkout, error) {
	if q.DaysStayed < 1 {
		return nil, apperr.Invalid("days_stayed", "must be at least 1")
	}
	if q.PricePerDay < 0 {
		return nil, apperr.Invalid("price_per_day", "must not be negative")
	}

	rec, err := e.vehicles.Get(vehicleID)
	if err != nil {
		return nil, err
	}

	snapshot, err := json.Marshal(rec)
	if err != nil {
		return nil, apperr.Storage("freeze vehicle snapshot", err)
	}

	checkoutDate := q.CheckoutDate
	if checkoutDate.IsZero() {
		checkoutDate = time.Now()
	}

	tx := e.db.Begin()
	if tx.Error != nil {
		return nil, apperr.Storage("begin checkout", tx.Error)
	}

	res := tx.Model(&models.Vehicle{}).
		Where("id = ? AND status = ?", vehicleID, models.StatusActive).
		Update("status", models.StatusCheckedOut)
	if res.Error != nil {
		tx.Rollback()
		return nil, apperr.Storage("flip vehicle status", res.Error)
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, apperr.ErrAlreadyCheckedOut
	}

	co := models.Checkout{
		VehicleID:          vehicleID,
		RegistrationNumber: rec.RegistrationNumber,
		OwnerName:          rec.OwnerName,
		VehicleType:        rec.VehicleType,
		InPlace:            rec.InPlace,
		InDate:             rec.InDate,
		VehicleDetails:     snapshot,
		CheckoutDate:       checkoutDate,
		CheckoutTime:       q.CheckoutTime,
		DaysStayed:         q.DaysStayed,
		PricePerDay:        q.PricePerDay,
		TotalAmount:        float64(q.DaysStayed) * q.PricePerDay,
	}
	if err := tx.Create(&co).Error; err != nil {
		tx.Rollback()
		return nil, apperr.Storage("create checkout", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperr.Storage("commit checkout", err)
	}

	logrus.WithFields(logrus.Fields{
		"vehicle_id": vehicleID,
		"days":       co.DaysStayed,
		"total":      co.TotalAmount,
	}).Info("vehicle checked out")

	return &co, nil
}

// Status reports whether a checkout row exists for the vehicle, and returns
// it when it does.
func (e *Engine) Status(vehicleID uint) (bool, *models.Checkout, error) {
	var co models.Checkout
	err := e.db.Where("vehicle_id = ?", vehicleID).First(&co).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil, nil
		}
		return false, nil, apperr.Storage("load checkout", err)
	}
	return true, &co, nil
}

// List returns the checkout ledger, newest first.
func (e *Engine) List() ([]models.Checkout, error) {
	var checkouts []models.Checkout
	if err := e.db.Order("checkout_date DESC").Find(&checkouts).Error; err != nil {
		return nil, apperr.Storage("list checkouts", err)
	}
	return checkouts, nil
}
