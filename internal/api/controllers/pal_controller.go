package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carelink/internal/models/request_models"
	"carelink/internal/services"
	"carelink/pkg/utils"
)

type PalController struct {
	palService services.PalServiceInterface
}

func NewPalController(palService services.PalServiceInterface) *PalController {
	return &PalController{
		palService: palService,
	}
}

func (pc *PalController) ListPals(c *gin.Context) {
	pals, err := pc.palService.FetchPals(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, pals, "")
}

func (pc *PalController) GetPal(c *gin.Context) {
	pal, err := pc.palService.GetPal(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, pal, "")
}

func (pc *PalController) BookSlot(c *gin.Context) {
	var req request_models.SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	pal, err := pc.palService.BookSlot(c.Param("id"), req.Date, req.Slot)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, pal, "Slot booked")
}

func (pc *PalController) ReleaseSlot(c *gin.Context) {
	var req request_models.SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	pal, err := pc.palService.ReleaseSlot(c.Param("id"), req.Date, req.Slot)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, pal, "Slot released")
}
