// Package occupancy derives per-location dashboard figures from the vehicle
// and checkout tables. Everything here is recomputed on demand; nothing is
// authoritative state.
package occupancy

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"yardkeeper/internal/apperr"
	"yardkeeper/internal/checkout"
	"yardkeeper/internal/models"
)

// RateResolver prices a stay for the dues columns.
type RateResolver interface {
	RateFor(location, vehicleType string) (float64, error)
}

type View struct {
	db    *gorm.DB
	rates RateResolver
}

func NewView(db *gorm.DB, rates RateResolver) *View {
	return &View{db: db, rates: rates}
}

// CountActive counts vehicles currently held at the named location.
func (v *View) CountActive(location string) (int64, error) {
	var n int64
	err := v.db.Model(&models.Vehicle{}).
		Where("status = ? AND in_place = ?", models.StatusActive, location).
		Count(&n).Error
	if err != nil {
		return 0, apperr.Storage("count active vehicles", err)
	}
	return n, nil
}

// LocationSummary is a location annotated with its live vehicle count and
// occupancy percentage.
type LocationSummary struct {
	models.Location
	CurrentVehicles int64 `json:"current_vehicles"`
	Occupancy       int   `json:"occupancy"`
}

// Summaries annotates every location with its current occupancy. Capacity is
// advisory, so the percentage may exceed 100.
func (v *View) Summaries() ([]LocationSummary, error) {
	var locations []models.Location
	if err := v.db.Order("name").Find(&locations).Error; err != nil {
		return nil, apperr.Storage("list locations", err)
	}

	summaries := make([]LocationSummary, 0, len(locations))
	for _, loc := range locations {
		count, err := v.CountActive(loc.Name)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, LocationSummary{
			Location:        loc,
			CurrentVehicles: count,
			Occupancy:       occupancyRate(count, loc.Capacity),
		})
	}
	return summaries, nil
}

// VehicleStat is one row of the location dashboard.
type VehicleStat struct {
	ID                 uint      `json:"id"`
	RegistrationNumber string    `json:"registration_number"`
	VehicleType        string    `json:"vehicle_type"`
	OwnerName          string    `json:"owner_name"`
	InDate             time.Time `json:"in_date"`
	Duration           int       `json:"duration"`
	Status             string    `json:"status"`
	Dues               float64   `json:"dues"`
}

// LocationStats is the dashboard aggregate for one location.
type LocationStats struct {
	ActiveVehicles int           `json:"activeVehicles"`
	TodayRevenue   float64       `json:"todayRevenue"`
	TotalDues      float64       `json:"totalDues"`
	OccupancyRate  int           `json:"occupancyRate"`
	Vehicles       []VehicleStat `json:"vehicles"`
}

// Stats computes the dashboard for a location: its vehicles (active ones by
// default, checked-out ones on request) with accrued dues, today's checkout
// revenue and the occupancy rate.
func (v *View) Stats(locationID uint, showCheckedOut bool, now time.Time) (*LocationStats, error) {
	var location models.Location
	if err := v.db.First(&location, locationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storage("load location", err)
	}

	status := models.StatusActive
	if showCheckedOut {
		status = models.StatusCheckedOut
	}
	var vehicles []models.Vehicle
	err := v.db.Where("in_place = ? AND status = ?", location.Name, status).
		Order("in_date").Find(&vehicles).Error
	if err != nil {
		return nil, apperr.Storage("list location vehicles", err)
	}

	stats := LocationStats{Vehicles: make([]VehicleStat, 0, len(vehicles))}
	for _, veh := range vehicles {
		stat := VehicleStat{
			ID:                 veh.ID,
			RegistrationNumber: veh.RegistrationNumber,
			VehicleType:        veh.VehicleType,
			OwnerName:          veh.OwnerName,
			InDate:             veh.InDate,
			Duration:           checkout.DaysStayed(veh.InDate, now),
			Status:             veh.Status,
		}
		if veh.Status == models.StatusActive {
			stats.ActiveVehicles++
			rate, err := v.rates.RateFor(veh.InPlace, veh.VehicleType)
			if err != nil {
				return nil, err
			}
			stat.Dues = float64(stat.Duration) * rate
			stats.TotalDues += stat.Dues
		}
		stats.Vehicles = append(stats.Vehicles, stat)
	}

	revenue, err := v.todayRevenue(location.Name, now)
	if err != nil {
		return nil, err
	}
	stats.TodayRevenue = revenue
	stats.OccupancyRate = occupancyRate(int64(stats.ActiveVehicles), location.Capacity)
	return &stats, nil
}

// todayRevenue sums checkout totals dated today for the location, using the
// frozen in_place so later vehicle edits don't shift history.
func (v *View) todayRevenue(location string, now time.Time) (float64, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var total float64
	err := v.db.Model(&models.Checkout{}).
		Where("in_place = ? AND checkout_date >= ? AND checkout_date < ?", location, dayStart, dayStart.AddDate(0, 0, 1)).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, apperr.Storage("sum today revenue", err)
	}
	return total, nil
}

func occupancyRate(count int64, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return int(float64(count)/float64(capacity)*100 + 0.5)
}
