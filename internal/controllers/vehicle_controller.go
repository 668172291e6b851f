package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"yardkeeper/internal/apperr"
	"yardkeeper/internal/checkout"
	"yardkeeper/internal/config"
	"yardkeeper/internal/store"
)

// intakeRequest is the POST /vehicles body. Field names follow the entry
// form the front end submits.
type intakeRequest struct {
	AgreementNo        string `json:"agreementNo"`
	FinancierName      string `json:"financierName"`
	OwnerName          string `json:"ownerName"`
	Address            string `json:"address"`
	RegistrationNumber string `json:"registrationNumber" binding:"required"`
	VehicleType        string `json:"vehicleType" binding:"required"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	Year               string `json:"year"`
	EngineNo           string `json:"engineNo"`
	ChassisNo          string `json:"chassisNo"`
	KmsRun             int    `json:"kmsRun"`
	InDate             string `json:"inDate" binding:"required"`
	InTime             string `json:"inTime"`
	InPlace            string `json:"inPlace" binding:"required"`
	AdditionalDetails  string `json:"additionalDetails"`

	Documents        map[string]bool   `json:"documents"`
	BatteryMake      string            `json:"batteryMake"`
	BatteryNumber    string            `json:"batteryNumber"`
	BatteryCondition string            `json:"batteryCondition"`
	Tyres            []store.TyreInput `json:"tyres"`
}

// CreateVehicle registers an intake: vehicle row plus documents, battery,
// tyres in one transaction.
func CreateVehicle(c *gin.Context) {
	var input intakeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid intake payload: " + err.Error()})
		return
	}

	inDate, err := time.Parse("2006-01-02", input.InDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "inDate must be YYYY-MM-DD"})
		return
	}

	vehicleID, err := store.New(config.DB).Create(store.IntakeInput{
		AgreementNo:        input.AgreementNo,
		FinancierName:      input.FinancierName,
		OwnerName:          input.OwnerName,
		Address:            input.Address,
		RegistrationNumber: input.RegistrationNumber,
		VehicleType:        input.VehicleType,
		Make:               input.Make,
		ModelName:          input.Model,
		Year:               input.Year,
		EngineNo:           input.EngineNo,
		ChassisNo:          input.ChassisNo,
		KmsRun:             input.KmsRun,
		InDate:             inDate,
		InTime:             input.InTime,
		InPlace:            input.InPlace,
		AdditionalDetails:  input.AdditionalDetails,
		Documents:          input.Documents,
		Battery: store.BatteryInput{
			Make:      input.BatteryMake,
			Number:    input.BatteryNumber,
			Condition: input.BatteryCondition,
		},
		Tyres: input.Tyres,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Vehicle entry created successfully",
		"vehicleId": vehicleID,
	})
}

// ListVehicles returns active vehicles with their child graphs, optionally
// filtered by ?location=.
func ListVehicles(c *gin.Context) {
	records, err := store.New(config.DB).ListActive(c.Query("location"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": records})
}

// GetVehicle returns one vehicle with its full child graph.
func GetVehicle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	rec, err := store.New(config.DB).Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "vehicle": rec})
}

// SearchVehicle looks a vehicle up by exact registration number. A miss is
// a 200 with vehicle:null, matching the operator search screen.
func SearchVehicle(c *gin.Context) {
	rec, err := store.New(config.DB).SearchByPlate(c.Param("plate"))
	if err != nil {
		respondError(c, err)
		return
	}
	if rec == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "vehicle": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "vehicle": rec})
}

// UpdateVehicle applies a partial update; supplied tyre or document sets
// replace the stored ones wholesale.
func UpdateVehicle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input store.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid update payload: " + err.Error()})
		return
	}
	if err := store.New(config.DB).Update(id, input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteVehicle removes the vehicle aggregate. A checkout row, if one
// exists, stays behind with its frozen snapshot.
func DeleteVehicle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	checkedOut, _, err := checkout.NewEngine(config.DB, store.New(config.DB), nil).Status(id)
	if err == nil && checkedOut {
		logrus.WithField("vehicle_id", id).Warn("deleting vehicle that has a checkout record")
	}

	if err := store.New(config.DB).Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Vehicle deleted successfully"})
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case apperr.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
	case errors.Is(err, apperr.ErrAlreadyCheckedOut):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Vehicle is already checked out"})
	default:
		logrus.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
	}
}
