package saved

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

//
// --------------------------------------------------
// GET /save_deal
// --------------------------------------------------
//

func (h *Handler) SaveDeal() gin.HandlerFunc {
	return func(c *gin.Context) {
		dealID, userID, ok := pairParams(c)
		if !ok {
			return
		}

		err := h.service.Save(c.Request.Context(), userID, dealID)
		switch {
		case errors.Is(err, ErrAlreadySaved):
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "deal already saved"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to save deal"})
		default:
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "deal saved"})
		}
	}
}

//
// --------------------------------------------------
// GET /unsave_deal
// --------------------------------------------------
//

func (h *Handler) UnsaveDeal() gin.HandlerFunc {
	return func(c *gin.Context) {
		dealID, userID, ok := pairParams(c)
		if !ok {
			return
		}

		err := h.service.Unsave(c.Request.Context(), userID, dealID)
		switch {
		case errors.Is(err, ErrNotSaved):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "deal not saved"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to unsave deal"})
		default:
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "deal unsaved"})
		}
	}
}

func pairParams(c *gin.Context) (dealID, userID string, ok bool) {
	dealID = c.Query("deal_id")
	userID = c.Query("user_id")
	if dealID == "" || userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "missing deal_id or user_id"})
		return "", "", false
	}
	return dealID, userID, true
}
