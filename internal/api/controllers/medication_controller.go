package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carelink/internal/models/db_models"
	"carelink/internal/models/request_models"
	"carelink/internal/services"
	"carelink/internal/stores"
	"carelink/pkg/utils"
)

type MedicationController struct {
	medicationService services.MedicationServiceInterface
}

func NewMedicationController(medicationService services.MedicationServiceInterface) *MedicationController {
	return &MedicationController{
		medicationService: medicationService,
	}
}

func (mc *MedicationController) Add(c *gin.Context) {
	var req request_models.AddMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	addedBy := db_models.Role(req.AddedBy)
	if addedBy != db_models.RoleSenior && addedBy != db_models.RoleFamily {
		utils.RespondError(c, http.StatusBadRequest, "added_by must be senior or family")
		return
	}

	med := mc.medicationService.Add(stores.NewMedicationInput{
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		Time:      req.Time,
		AddedBy:   addedBy,
	})
	utils.RespondSuccess(c, med, "Medication added")
}

func (mc *MedicationController) List(c *gin.Context) {
	utils.RespondSuccess(c, mc.medicationService.List(), "")
}

func (mc *MedicationController) NextDose(c *gin.Context) {
	med, ok := mc.medicationService.NextUpcomingDose()
	if !ok {
		utils.RespondSuccess(c, nil, "No upcoming dose")
		return
	}
	utils.RespondSuccess(c, med, "")
}

func (mc *MedicationController) UpdateStatus(c *gin.Context) {
	var req request_models.MedicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	med, err := mc.medicationService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, med, "Status updated")
}

func (mc *MedicationController) RequestRefill(c *gin.Context) {
	med, err := mc.medicationService.RequestRefill(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, med, "Refill requested")
}

func (mc *MedicationController) MarkTaken(c *gin.Context) {
	var req request_models.MarkTakenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	med, err := mc.medicationService.MarkTaken(c.Param("id"), req.Taken)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, med, "Updated")
}
