package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carelink/pkg/upload"
	"carelink/pkg/utils"
)

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// UploadImage accepts a profile/gig photo. Only jpg/jpeg/png up to 5MB;
// the response carries an opaque URI the client stores as-is.
func (uc *UploadController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "file field required")
		return
	}

	result := upload.Upload(file.Filename, file.Size)
	if !result.Accepted() {
		utils.RespondError(c, http.StatusBadRequest, result.Reason)
		return
	}

	utils.RespondSuccess(c, result, "Upload accepted")
}
