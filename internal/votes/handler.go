package votes

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
// GET /update_vote
// --------------------------------------------------
//

func (h *Handler) UpdateVote() gin.HandlerFunc {
	return func(c *gin.Context) {
		dealID := c.Query("deal_id")
		userID := c.Query("user_id")
		vote := Type(c.Query("user_vote"))

		if dealID == "" || userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "missing deal_id or user_id"})
			return
		}

		applied, err := h.service.SetVote(c.Request.Context(), userID, dealID, vote)
		switch {
		case errors.Is(err, ErrInvalidVote):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid user_vote"})
		case errors.Is(err, ErrVoteNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "no vote to remove"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to update vote"})
		default:
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "vote " + string(applied) + " applied"})
		}
	}
}
