package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"carelink/internal/models/db_models"
	"carelink/internal/models/request_models"
	"carelink/internal/services"
	"carelink/pkg/utils"
)

type TrackingController struct {
	trackingService services.TrackingServiceInterface
}

func NewTrackingController(trackingService services.TrackingServiceInterface) *TrackingController {
	return &TrackingController{
		trackingService: trackingService,
	}
}

func (tc *TrackingController) Start(c *gin.Context) {
	entry := tc.trackingService.Start(c.Param("orderId"))
	utils.RespondSuccess(c, entry, "Tracking started")
}

func (tc *TrackingController) Get(c *gin.Context) {
	entry, err := tc.trackingService.Get(c.Param("orderId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entry, "")
}

func (tc *TrackingController) UpdateStatus(c *gin.Context) {
	var req request_models.TrackingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := tc.trackingService.UpdateStatus(c.Param("orderId"), req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entry, "Status updated")
}

func (tc *TrackingController) UpdateLocation(c *gin.Context) {
	var req request_models.TrackingLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := tc.trackingService.UpdateLocation(c.Param("orderId"), db_models.GeoPoint{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timestamp: time.Now(),
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entry, "Location updated")
}

func (tc *TrackingController) AssignPal(c *gin.Context) {
	var req request_models.TrackingAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := tc.trackingService.AssignPal(c.Param("orderId"), req.PalID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entry, "Pal assigned")
}
