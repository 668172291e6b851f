package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"yardkeeper/internal/config"
	"yardkeeper/internal/occupancy"
	"yardkeeper/internal/pricing"
)

func newView() *occupancy.View {
	db := config.DB
	return occupancy.NewView(db, pricing.NewResolver(db, config.DefaultRatePerDay()))
}

// LocationStats returns the dashboard aggregate for one location: vehicle
// list with accrued dues, today's revenue and the occupancy rate.
// ?showCheckedOut=true switches the vehicle list to released vehicles.
func LocationStats(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	stats, err := newView().Stats(id, c.Query("showCheckedOut") == "true", time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// LocationVehicleCounts annotates every location with its active vehicle
// count for the overview dashboard.
func LocationVehicleCounts(c *gin.Context) {
	summaries, err := newView().Summaries()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": summaries})
}
