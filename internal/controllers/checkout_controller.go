package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"yardkeeper/internal/checkout"
	"yardkeeper/internal/config"
	"yardkeeper/internal/pricing"
	"yardkeeper/internal/store"
)

func newEngine() *checkout.Engine {
	db := config.DB
	return checkout.NewEngine(db, store.New(db), pricing.NewResolver(db, config.DefaultRatePerDay()))
}

// QuoteCheckout prices the stay for the vehicle with the given plate as of
// now. Nothing is written; operators may requote freely.
func QuoteCheckout(c *gin.Context) {
	quote, err := newEngine().Quote(c.Param("plate"), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "quote": quote})
}

type commitRequest struct {
	VehicleID    uint    `json:"vehicle_id" binding:"required"`
	CheckoutDate string  `json:"checkout_date"`
	CheckoutTime string  `json:"checkout_time"`
	DaysStayed   int     `json:"days_stayed" binding:"required"`
	PricePerDay  float64 `json:"price_per_day"`
	TotalAmount  float64 `json:"total_amount"`
}

// CreateCheckout commits a checkout: writes the checkout row with the
// frozen vehicle snapshot and flips the vehicle's status, atomically. A
// concurrent second commit gets a 409.
func CreateCheckout(c *gin.Context) {
	var input commitRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid checkout payload: " + err.Error()})
		return
	}

	checkoutDate := time.Now()
	if input.CheckoutDate != "" {
		parsed, err := time.Parse("2006-01-02", input.CheckoutDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "checkout_date must be YYYY-MM-DD"})
			return
		}
		checkoutDate = parsed
	}

	co, err := newEngine().Commit(input.VehicleID, checkout.Quote{
		VehicleID:    input.VehicleID,
		DaysStayed:   input.DaysStayed,
		PricePerDay:  input.PricePerDay,
		CheckoutDate: checkoutDate,
		CheckoutTime: input.CheckoutTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "checkout": co})
}

// CheckoutStatus reports whether the vehicle has been checked out, with the
// checkout record when it has.
func CheckoutStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	checkedOut, details, err := newEngine().Status(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isCheckedOut": checkedOut, "checkoutDetails": details})
}

// ListCheckouts returns the checked-out ledger, newest first. Rows are
// self-contained: they read from the frozen snapshot, not the live vehicle.
func ListCheckouts(c *gin.Context) {
	checkouts, err := newEngine().List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": checkouts})
}
