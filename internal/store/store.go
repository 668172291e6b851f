// Package store owns the vehicle intake aggregate: the vehicle row plus its
// document checklist, battery detail, five tyre rows and images. Every
// multi-row write runs inside one transaction; a failed intake leaves no
// rows behind.
package store

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"yardkeeper/internal/apperr"
	"yardkeeper/internal/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// BatteryInput carries the single battery record of an intake.
type BatteryInput struct {
	Make      string `json:"make"`
	Number    string `json:"number"`
	Condition string `json:"condition"`
}

// TyreInput carries one tyre record. An intake must supply exactly one per
// canonical position.
type TyreInput struct {
	Position  string `json:"position"`
	Make      string `json:"make"`
	Number    string `json:"number"`
	Condition string `json:"condition"`
}

// IntakeInput is everything needed to register a vehicle.
type IntakeInput struct {
	AgreementNo        string
	FinancierName      string
	OwnerName          string
	Address            string
	RegistrationNumber string
	VehicleType        string
	Make               string
	ModelName          string
	Year               string
	EngineNo           string
	ChassisNo          string
	KmsRun             int
	InDate             time.Time
	InTime             string
	InPlace            string
	AdditionalDetails  string

	Documents map[string]bool
	Battery   BatteryInput
	Tyres     []TyreInput
}

// Record is a vehicle reassembled with its full child graph.
type Record struct {
	models.Vehicle
	Documents map[string]bool       `json:"documents"`
	Battery   *models.BatteryDetail `json:"battery_details"`
	Tyres     []models.TyreDetail   `json:"tyres"`
	Images    []string              `json:"images"`
}

// Create validates the intake and writes the vehicle and all four child
// collections atomically. Returns the new vehicle id.
func (s *Store) Create(in IntakeInput) (uint, error) {
	if err := validateIntake(&in); err != nil {
		return 0, err
	}
	if err := s.checkReferenceNames(in.InPlace, in.VehicleType); err != nil {
		return 0, err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return 0, apperr.Storage("begin intake", tx.Error)
	}

	vehicle := models.Vehicle{
		AgreementNo:        in.AgreementNo,
		FinancierName:      in.FinancierName,
		OwnerName:          in.OwnerName,
		Address:            in.Address,
		RegistrationNumber: strings.TrimSpace(in.RegistrationNumber),
		VehicleType:        in.VehicleType,
		Make:               in.Make,
		ModelName:          in.ModelName,
		Year:               in.Year,
		EngineNo:           in.EngineNo,
		ChassisNo:          in.ChassisNo,
		KmsRun:             in.KmsRun,
		InDate:             in.InDate,
		InTime:             in.InTime,
		InPlace:            in.InPlace,
		AdditionalDetails:  in.AdditionalDetails,
		Status:             models.StatusActive,
	}
	if err := tx.Create(&vehicle).Error; err != nil {
		tx.Rollback()
		return 0, apperr.Storage("create vehicle", err)
	}

	if err := insertDocuments(tx, vehicle.ID, in.Documents); err != nil {
		tx.Rollback()
		return 0, err
	}

	battery := models.BatteryDetail{
		VehicleID: vehicle.ID,
		Make:      in.Battery.Make,
		Number:    in.Battery.Number,
		Condition: in.Battery.Condition,
	}
	if err := tx.Create(&battery).Error; err != nil {
		tx.Rollback()
		return 0, apperr.Storage("create battery detail", err)
	}

	if err := insertTyres(tx, vehicle.ID, in.Tyres); err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit().Error; err != nil {
		return 0, apperr.Storage("commit intake", err)
	}
	return vehicle.ID, nil
}

// Get reassembles a vehicle with its full child graph.
func (s *Store) Get(id uint) (*Record, error) {
	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storage("get vehicle", err)
	}
	return s.assemble(vehicle)
}

// SearchByPlate looks up a vehicle by exact registration number, after
// trimming surrounding whitespace. A miss is (nil, nil), not an error:
// callers present "no vehicle found" to the operator.
func (s *Store) SearchByPlate(plate string) (*Record, error) {
	var vehicle models.Vehicle
	err := s.db.Where("registration_number = ?", strings.TrimSpace(plate)).First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Storage("search vehicle", err)
	}
	return s.assemble(vehicle)
}

// UpdateInput carries a partial update. Nil scalar pointers leave the field
// alone; nil Documents/Tyres/Battery leave that child collection untouched.
// Supplied Documents and Tyres replace the stored set wholesale and must
// cover the canonical vocabulary, same as at intake. Status is deliberately
// absent: only the checkout engine flips it.
type UpdateInput struct {
	AgreementNo        *string `json:"agreement_no"`
	FinancierName      *string `json:"financier_name"`
	OwnerName          *string `json:"owner_name"`
	Address            *string `json:"address"`
	RegistrationNumber *string `json:"registration_number"`
	VehicleType        *string `json:"vehicle_type"`
	Make               *string `json:"make"`
	ModelName          *string `json:"model"`
	Year               *string `json:"year"`
	EngineNo           *string `json:"engine_no"`
	ChassisNo          *string `json:"chassis_no"`
	KmsRun             *int    `json:"kms_run"`
	InTime             *string `json:"in_time"`
	InPlace            *string `json:"in_place"`
	AdditionalDetails  *string `json:"additional_details"`

	Documents map[string]bool `json:"documents"`
	Battery   *BatteryInput   `json:"battery_details"`
	Tyres     []TyreInput     `json:"tyres"`
}

// Update applies a partial update as one atomic transaction.
func (s *Store) Update(id uint, in UpdateInput) error {
	if in.Documents != nil {
		if err := validateDocuments(in.Documents); err != nil {
			return err
		}
	}
	if in.Tyres != nil {
		if err := validateTyres(in.Tyres); err != nil {
			return err
		}
	}
	if in.Battery != nil && !models.KnownCondition(in.Battery.Condition) {
		return apperr.Invalid("battery.condition", "must be good, average or bad")
	}
	if in.InPlace != nil || in.VehicleType != nil {
		place, vtype := "", ""
		if in.InPlace != nil {
			place = *in.InPlace
		}
		if in.VehicleType != nil {
			vtype = *in.VehicleType
		}
		if err := s.checkReferenceNames(place, vtype); err != nil {
			return err
		}
	}

	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return apperr.Storage("load vehicle", err)
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return apperr.Storage("begin update", tx.Error)
	}

	updates := scalarUpdates(in)
	if len(updates) > 0 {
		if err := tx.Model(&vehicle).Updates(updates).Error; err != nil {
			tx.Rollback()
			return apperr.Storage("update vehicle", err)
		}
	}

	if in.Documents != nil {
		if err := tx.Where("vehicle_id = ?", id).Unscoped().Delete(&models.Document{}).Error; err != nil {
			tx.Rollback()
			return apperr.Storage("clear documents", err)
		}
		if err := insertDocuments(tx, id, in.Documents); err != nil {
			tx.Rollback()
			return err
		}
	}

	if in.Tyres != nil {
		if err := tx.Where("vehicle_id = ?", id).Unscoped().Delete(&models.TyreDetail{}).Error; err != nil {
			tx.Rollback()
			return apperr.Storage("clear tyres", err)
		}
		if err := insertTyres(tx, id, in.Tyres); err != nil {
			tx.Rollback()
			return err
		}
	}

	if in.Battery != nil {
		err := tx.Model(&models.BatteryDetail{}).
			Where("vehicle_id = ?", id).
			Updates(map[string]interface{}{
				"make":             in.Battery.Make,
				"number":           in.Battery.Number,
				"condition_status": in.Battery.Condition,
			}).Error
		if err != nil {
			tx.Rollback()
			return apperr.Storage("update battery detail", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return apperr.Storage("commit update", err)
	}
	return nil
}

// Delete removes the vehicle and all four child collections atomically. An
// existing checkout row is left alone: its snapshot is self-contained.
func (s *Store) Delete(id uint) error {
	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return apperr.Storage("load vehicle", err)
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return apperr.Storage("begin delete", tx.Error)
	}
	for _, child := range []interface{}{
		&models.Document{}, &models.BatteryDetail{}, &models.TyreDetail{}, &models.VehicleImage{},
	} {
		if err := tx.Where("vehicle_id = ?", id).Unscoped().Delete(child).Error; err != nil {
			tx.Rollback()
			return apperr.Storage("delete vehicle children", err)
		}
	}
	if err := tx.Delete(&vehicle).Error; err != nil {
		tx.Rollback()
		return apperr.Storage("delete vehicle", err)
	}
	if err := tx.Commit().Error; err != nil {
		return apperr.Storage("commit delete", err)
	}
	return nil
}

// ListActive returns all active vehicles, newest intake first, optionally
// filtered by intake location, with child graphs assembled.
func (s *Store) ListActive(location string) ([]Record, error) {
	q := s.db.Where("status = ?", models.StatusActive)
	if location != "" {
		q = q.Where("in_place = ?", location)
	}
	var vehicles []models.Vehicle
	if err := q.Order("created_at DESC").Find(&vehicles).Error; err != nil {
		return nil, apperr.Storage("list active vehicles", err)
	}

	records := make([]Record, 0, len(vehicles))
	for _, v := range vehicles {
		rec, err := s.assemble(v)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

// AddImages records uploaded image locators for an existing vehicle.
func (s *Store) AddImages(vehicleID uint, images []models.VehicleImage) error {
	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return apperr.Storage("load vehicle", err)
	}
	for i := range images {
		images[i].VehicleID = vehicleID
	}
	if err := s.db.Create(&images).Error; err != nil {
		return apperr.Storage("create vehicle images", err)
	}
	return nil
}

func (s *Store) assemble(vehicle models.Vehicle) (*Record, error) {
	rec := Record{Vehicle: vehicle, Documents: map[string]bool{}, Images: []string{}}

	var docs []models.Document
	if err := s.db.Where("vehicle_id = ?", vehicle.ID).Find(&docs).Error; err != nil {
		return nil, apperr.Storage("load documents", err)
	}
	for _, d := range docs {
		rec.Documents[d.DocType] = d.IsAvailable
	}

	var battery models.BatteryDetail
	err := s.db.Where("vehicle_id = ?", vehicle.ID).First(&battery).Error
	if err == nil {
		rec.Battery = &battery
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Storage("load battery detail", err)
	}

	if err := s.db.Where("vehicle_id = ?", vehicle.ID).Order("position").Find(&rec.Tyres).Error; err != nil {
		return nil, apperr.Storage("load tyres", err)
	}

	var images []models.VehicleImage
	if err := s.db.Where("vehicle_id = ?", vehicle.ID).Order("created_at").Find(&images).Error; err != nil {
		return nil, apperr.Storage("load images", err)
	}
	for _, img := range images {
		rec.Images = append(rec.Images, img.ImageURL)
	}

	return &rec, nil
}

// checkReferenceNames verifies that the intake location and vehicle type
// currently exist in the reference tables. The vehicle keeps a free-text
// copy of the names; this check only guards against typos at write time.
func (s *Store) checkReferenceNames(place, vtype string) error {
	if place != "" {
		var n int64
		if err := s.db.Model(&models.Location{}).Where("name = ?", place).Count(&n).Error; err != nil {
			return apperr.Storage("check location", err)
		}
		if n == 0 {
			return apperr.Invalid("in_place", "unknown location "+place)
		}
	}
	if vtype != "" {
		var n int64
		if err := s.db.Model(&models.VehicleType{}).Where("name = ?", vtype).Count(&n).Error; err != nil {
			return apperr.Storage("check vehicle type", err)
		}
		if n == 0 {
			return apperr.Invalid("vehicle_type", "unknown vehicle type "+vtype)
		}
	}
	return nil
}

func insertDocuments(tx *gorm.DB, vehicleID uint, docs map[string]bool) error {
	rows := make([]models.Document, 0, len(docs))
	// Insert in canonical order so the checklist reads predictably.
	for _, tag := range models.DocumentTags {
		rows = append(rows, models.Document{
			VehicleID:   vehicleID,
			DocType:     tag,
			IsAvailable: docs[tag],
		})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return apperr.Storage("create documents", err)
	}
	return nil
}

func insertTyres(tx *gorm.DB, vehicleID uint, tyres []TyreInput) error {
	rows := make([]models.TyreDetail, 0, len(tyres))
	for _, t := range tyres {
		rows = append(rows, models.TyreDetail{
			VehicleID: vehicleID,
			Position:  t.Position,
			Make:      t.Make,
			Number:    t.Number,
			Condition: t.Condition,
		})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return apperr.Storage("create tyres", err)
	}
	return nil
}

func scalarUpdates(in UpdateInput) map[string]interface{} {
	updates := map[string]interface{}{}
	set := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	set("agreement_no", in.AgreementNo)
	set("financier_name", in.FinancierName)
	set("owner_name", in.OwnerName)
	set("address", in.Address)
	if in.RegistrationNumber != nil {
		updates["registration_number"] = strings.TrimSpace(*in.RegistrationNumber)
	}
	set("vehicle_type", in.VehicleType)
	set("make", in.Make)
	set("model_name", in.ModelName)
	set("year", in.Year)
	set("engine_no", in.EngineNo)
	set("chassis_no", in.ChassisNo)
	if in.KmsRun != nil {
		updates["kms_run"] = *in.KmsRun
	}
	set("in_time", in.InTime)
	set("in_place", in.InPlace)
	set("additional_details", in.AdditionalDetails)
	return updates
}
