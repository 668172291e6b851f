package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"yardkeeper/internal/config"
	"yardkeeper/internal/models"
	"yardkeeper/internal/pricing"
)

// isUniqueViolation matches the Postgres duplicate-key error (code 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// the pgx driver reports the same SQLSTATE in its message
	return err != nil && strings.Contains(err.Error(), "23505")
}

// ---- Locations ----

// ListLocations returns every location annotated with its live occupancy.
func ListLocations(c *gin.Context) {
	summaries, err := newView().Summaries()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": summaries})
}

func CreateLocation(c *gin.Context) {
	var location models.Location
	if err := c.ShouldBindJSON(&location); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if location.Capacity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "capacity must not be negative"})
		return
	}
	if err := config.DB.Create(&location).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Location name already exists"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": location, "message": "Location added successfully"})
}

func UpdateLocation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var location models.Location
	if err := config.DB.First(&location, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Location not found"})
		return
	}
	var input models.Location
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	location.Name = input.Name
	location.Address = input.Address
	location.Capacity = input.Capacity
	if err := config.DB.Save(&location).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Location name already exists"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Location updated successfully", "data": location})
}

// DeleteLocation removes a location together with its price entries and the
// vehicles held there, as one transaction.
func DeleteLocation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var location models.Location
	if err := config.DB.First(&location, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Location not found"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		respondError(c, tx.Error)
		return
	}
	if err := tx.Unscoped().Where("location_id = ?", id).Delete(&models.PriceEntry{}).Error; err != nil {
		tx.Rollback()
		respondError(c, err)
		return
	}
	if err := deleteVehiclesWhere(tx, "in_place = ?", location.Name); err != nil {
		tx.Rollback()
		respondError(c, err)
		return
	}
	if err := tx.Delete(&location).Error; err != nil {
		tx.Rollback()
		respondError(c, err)
		return
	}
	if err := tx.Commit().Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Location and all associated data deleted successfully"})
}

// ---- Vehicle types ----

func ListVehicleTypes(c *gin.Context) {
	var types []models.VehicleType
	if err := config.DB.Order("name").Find(&types).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": types})
}

func CreateVehicleType(c *gin.Context) {
	var vtype models.VehicleType
	if err := c.ShouldBindJSON(&vtype); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err := config.DB.Create(&vtype).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Vehicle type already exists"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Vehicle type added successfully", "id": vtype.ID})
}

// DeleteVehicleType removes a vehicle type together with its price entries
// and every vehicle of that type, as one transaction.
func DeleteVehicleType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var vtype models.VehicleType
	if err := config.DB.First(&vtype, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Vehicle type not found"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		respondError(c, tx.Error)
		return
	}
	if err := tx.Unscoped().Where("vehicle_type_id = ?", id).Delete(&models.PriceEntry{}).Error; err != nil {
		tx.Rollback()
		respondError(c, err)
		return
	}
	if err := deleteVehiclesWhere(tx, "vehicle_type = ?", vtype.Name); err != nil {
		tx.Rollback()
		respondError(c, err)
		return
	}
	if err := tx.Delete(&vtype).Error; err != nil {
		tx.Rollback()
		respondError(c, err)
		return
	}
	if err := tx.Commit().Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Vehicle type and all related data deleted successfully"})
}

// ---- Prices ----

func ListPrices(c *gin.Context) {
	entries, err := pricing.NewResolver(config.DB, config.DefaultRatePerDay()).List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

// ReplacePrices swaps the whole price table atomically.
func ReplacePrices(c *gin.Context) {
	var input struct {
		Prices []pricing.Entry `json:"prices" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid prices data"})
		return
	}
	if err := pricing.NewResolver(config.DB, config.DefaultRatePerDay()).ReplaceAll(input.Prices); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Prices updated successfully"})
}

// ---- Users ----

func ListUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Select("id", "username", "role").Find(&users).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
}

func CreateUser(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if input.Role == "" {
		input.Role = "operator"
	}
	if input.Role != "admin" && input.Role != "operator" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "role must be admin or operator"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}
	user := models.User{Username: input.Username, Password: string(hash), Role: input.Role}
	if err := config.DB.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Username already exists"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User created successfully",
		"data":    gin.H{"id": user.ID, "username": user.Username, "role": user.Role},
	})
}

func DeleteUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := config.DB.Delete(&models.User{}, id).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}

// deleteVehiclesWhere removes matching vehicles and their child rows inside
// the caller's transaction.
func deleteVehiclesWhere(tx *gorm.DB, cond string, arg interface{}) error {
	var ids []uint
	if err := tx.Model(&models.Vehicle{}).Where(cond, arg).Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	for _, child := range []interface{}{
		&models.Document{}, &models.BatteryDetail{}, &models.TyreDetail{}, &models.VehicleImage{},
	} {
		if err := tx.Unscoped().Where("vehicle_id IN ?", ids).Delete(child).Error; err != nil {
			return err
		}
	}
	return tx.Where("id IN ?", ids).Delete(&models.Vehicle{}).Error
}
