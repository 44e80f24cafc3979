package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carelink/internal/models/response_models"
	"carelink/internal/nav"
	"carelink/internal/services"
	"carelink/pkg/utils"
)

type NavController struct {
	sessionService services.SessionServiceInterface
}

func NewNavController(sessionService services.SessionServiceInterface) *NavController {
	return &NavController{
		sessionService: sessionService,
	}
}

// Evaluate runs the gate for the caller's current location. Clients call it
// on every navigation event and follow the redirect when one is returned.
func (nc *NavController) Evaluate(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		utils.RespondError(c, http.StatusBadRequest, "location query parameter required")
		return
	}

	user := nc.sessionService.Current().User
	redirect, needed := nav.Evaluate(user, nav.Location(location))

	decision := response_models.NavDecision{
		State:     nav.StateOf(user).String(),
		Permitted: !needed,
	}
	if needed {
		decision.Redirect = string(redirect)
	}

	utils.RespondSuccess(c, decision, "")
}
