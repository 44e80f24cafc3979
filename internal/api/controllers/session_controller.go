package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carelink/internal/models/request_models"
	"carelink/internal/services"
	"carelink/internal/stores"
	"carelink/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
}

func NewSessionController(sessionService services.SessionServiceInterface) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// SelectRole godoc
// @Summary Choose the user's role
// @Description Records senior/family/pal; first step of onboarding
// @Tags Session
// @Accept json
// @Produce json
// @Param request body request_models.SelectRoleRequest true "Role payload"
// @Success 200 {object} utils.APIResponse
// @Router /session/role [post]
func (sc *SessionController) SelectRole(c *gin.Context) {
	var req request_models.SelectRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := sc.sessionService.SelectRole(req.Role); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sc.sessionService.Current(), "Role selected")
}

func (sc *SessionController) RequestOtp(c *gin.Context) {
	var req request_models.RequestOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := sc.sessionService.RequestOtp(req.Phone); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Verification code sent")
}

func (sc *SessionController) VerifyOtp(c *gin.Context) {
	var req request_models.VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := sc.sessionService.VerifyOtp(req.Phone, req.Code); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sc.sessionService.Current(), "Phone verified")
}

// CompleteProfile godoc
// @Summary Finish registration
// @Description Merges profile fields; returns the session token once the profile is complete
// @Tags Session
// @Accept json
// @Produce json
// @Param request body request_models.ProfileRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Router /session/profile [post]
func (sc *SessionController) CompleteProfile(c *gin.Context) {
	var req request_models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := sc.sessionService.CompleteProfile(stores.ProfileUpdate{
		Name:             req.Name,
		Address:          req.Address,
		DateOfBirth:      req.DateOfBirth,
		AvatarURI:        req.AvatarURI,
		EmergencyContact: req.EmergencyContact,
	}, req.EmergencyPIN)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token, "session": sc.sessionService.Current()}, "Profile completed")
}

func (sc *SessionController) Current(c *gin.Context) {
	utils.RespondSuccess(c, sc.sessionService.Current(), "")
}

func (sc *SessionController) Logout(c *gin.Context) {
	sc.sessionService.Logout()
	utils.RespondSuccess(c, nil, "Logged out")
}
