package controllers

import (
	"net/http"

	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
)

// HistoryController exposes paid stays. History rows are never modified.
type HistoryController struct {
	History *services.HistoryService
}

func NewHistoryController(history *services.HistoryService) *HistoryController {
	return &HistoryController{History: history}
}

// List GET /history?guest_id=&room_id=
func (hc *HistoryController) List(c *gin.Context) {
	guestID, ok := queryID(c, "guest_id")
	if !ok {
		return
	}
	roomID, ok := queryID(c, "room_id")
	if !ok {
		return
	}
	list, err := hc.History.List(c.Request.Context(), stayFilter(roomID, guestID))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"history": list})
}

func (hc *HistoryController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h, err := hc.History.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"history": h})
}
