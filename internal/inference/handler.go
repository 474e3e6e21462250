package inference

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

//
// --------------------------------------------------
// POST /proxy/generate
// --------------------------------------------------
//

type generateRequest struct {
	ImageID string `json:"image_id" binding:"required"`
}

func (h *Handler) Generate() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req generateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing image_id"})
			return
		}

		fields, err := h.client.Generate(c.Request.Context(), req.ImageID)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "deal generation failed"})
			return
		}

		c.JSON(http.StatusOK, fields)
	}
}

//
// --------------------------------------------------
// GET /proxy/handshake
// --------------------------------------------------
//

func (h *Handler) Handshake() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"gpu_status": h.client.Handshake(c.Request.Context()),
		})
	}
}
