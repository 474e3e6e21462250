package storage

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	r2 *R2Client
}

func NewHandler(r2 *R2Client) *Handler {
	return &Handler{r2: r2}
}

//
// --------------------------------------------------
// POST /upload_deal_image
// --------------------------------------------------
//

func (h *Handler) UploadDealImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file"})
			return
		}

		imageID := uuid.New().String()
		url, err := h.r2.UploadDealImage(c.Request.Context(), imageID, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"image_id":  imageID,
			"image_url": url,
		})
	}
}
