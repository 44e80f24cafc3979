package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carelink/internal/models/db_models"
	"carelink/internal/services"
	"carelink/pkg/utils"
)

type HealthController struct {
	healthService services.HealthServiceInterface
}

func NewHealthController(healthService services.HealthServiceInterface) *HealthController {
	return &HealthController{
		healthService: healthService,
	}
}

func (hc *HealthController) Current(c *gin.Context) {
	utils.RespondSuccess(c, hc.healthService.Current(), "")
}

func (hc *HealthController) History(c *gin.Context) {
	entries, err := hc.healthService.History(c.Param("vital"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entries, "")
}

// bindReading decodes the request body into the reading type for the vital
// named in the path.
func bindReading(c *gin.Context, vital string) (interface{}, bool) {
	var err error
	var reading interface{}

	switch db_models.Vital(vital) {
	case db_models.VitalMood:
		var r db_models.MoodReading
		err = c.ShouldBindJSON(&r)
		reading = r
	case db_models.VitalBloodPressure:
		var r db_models.BloodPressureReading
		err = c.ShouldBindJSON(&r)
		reading = r
	case db_models.VitalBloodSugar:
		var r db_models.BloodSugarReading
		err = c.ShouldBindJSON(&r)
		reading = r
	case db_models.VitalWeight:
		var r db_models.WeightReading
		err = c.ShouldBindJSON(&r)
		reading = r
	case db_models.VitalWater:
		var r db_models.WaterReading
		err = c.ShouldBindJSON(&r)
		reading = r
	case db_models.VitalHeartRate:
		var r db_models.HeartRateReading
		err = c.ShouldBindJSON(&r)
		reading = r
	case db_models.VitalTemperature:
		var r db_models.TemperatureReading
		err = c.ShouldBindJSON(&r)
		reading = r
	default:
		utils.RespondError(c, http.StatusBadRequest, "Unknown vital")
		return nil, false
	}

	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return nil, false
	}
	return reading, true
}

// RecordVital is the combined write path: snapshot plus history entry.
func (hc *HealthController) RecordVital(c *gin.Context) {
	vital := c.Param("vital")
	reading, ok := bindReading(c, vital)
	if !ok {
		return
	}

	if err := hc.healthService.RecordVital(vital, reading); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, hc.healthService.Current(), "Vital recorded")
}

// UpdateWater is a point setter; it does not append history.
func (hc *HealthController) UpdateWater(c *gin.Context) {
	var r db_models.WaterReading
	if err := c.ShouldBindJSON(&r); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := hc.healthService.UpdateWater(r); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, hc.healthService.Current(), "Water updated")
}

// UpdateBloodPressure is a point setter; it does not append history.
func (hc *HealthController) UpdateBloodPressure(c *gin.Context) {
	var r db_models.BloodPressureReading
	if err := c.ShouldBindJSON(&r); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := hc.healthService.UpdateBloodPressure(r); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, hc.healthService.Current(), "Blood pressure updated")
}
