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

type GigController struct {
	gigService services.GigServiceInterface
}

func NewGigController(gigService services.GigServiceInterface) *GigController {
	return &GigController{
		gigService: gigService,
	}
}

func (gc *GigController) CreateGig(c *gin.Context) {
	var req request_models.CreateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	items := make([]db_models.GigItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, db_models.GigItem{Name: it.Name, Quantity: it.Quantity})
	}

	gig := gc.gigService.CreateGig(stores.NewGigInput{
		SeniorID:   req.SeniorID,
		SeniorName: req.SeniorName,
		FamilyID:   req.FamilyID,
		Category:   req.Category,
		Items:      items,
		Budget:     req.Budget,
	})

	utils.RespondSuccess(c, gig, "Gig created")
}

func (gc *GigController) ListGigs(c *gin.Context) {
	gigs := gc.gigService.ListGigs(c.Query("status"), c.Query("senior_id"))
	utils.RespondSuccess(c, gigs, "")
}

func (gc *GigController) GetGig(c *gin.Context) {
	gig, err := gc.gigService.GetGig(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gig, "")
}

func (gc *GigController) UpdateStatus(c *gin.Context) {
	var req request_models.GigStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	gig, err := gc.gigService.AdvanceStatus(c.Param("id"), req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gig, "Status updated")
}

// Approve godoc
// @Summary Family approval of a gig
// @Description Moves the gig to approved_and_assigned and guarantees payment
// @Tags Gigs
// @Accept json
// @Produce json
// @Param id path string true "Gig id"
// @Param request body request_models.ApproveGigRequest true "Approval payload"
// @Success 200 {object} utils.APIResponse
// @Router /gigs/{id}/approve [post]
func (gc *GigController) Approve(c *gin.Context) {
	var req request_models.ApproveGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	gig, err := gc.gigService.Approve(c.Param("id"), stores.GigApproval{
		Budget:  req.Budget,
		PalID:   req.PalID,
		PalName: req.PalName,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gig, "Gig approved")
}

func (gc *GigController) Assign(c *gin.Context) {
	var req request_models.AssignPalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	gig, err := gc.gigService.Assign(c.Param("id"), req.PalID, req.PalName)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gig, "Pal assigned")
}

func (gc *GigController) ToggleItem(c *gin.Context) {
	gig, err := gc.gigService.ToggleItem(c.Param("id"), c.Param("itemId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gig, "Item toggled")
}
