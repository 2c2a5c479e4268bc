package controllers

import (
	"net/http"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type RoomTypeController struct {
	RoomTypes *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypes: svc}
}

type roomTypeRequest struct {
	Name         string `json:"name" form:"name"`
	Description  string `json:"description" form:"description"`
	MaxOccupancy int    `json:"max_occupancy" form:"max_occupancy"`
}

type roomTypeUpdateRequest struct {
	Name         *string `json:"name" form:"name"`
	Description  *string `json:"description" form:"description"`
	MaxOccupancy *int    `json:"max_occupancy" form:"max_occupancy"`
}

func (rc *RoomTypeController) List(c *gin.Context) {
	types, err := rc.RoomTypes.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"room_types": types})
}

func (rc *RoomTypeController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rt, err := rc.RoomTypes.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"room_type": rt})
}

func (rc *RoomTypeController) Create(c *gin.Context) {
	var req roomTypeRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	var rt models.RoomType
	if err := copier.Copy(&rt, &req); err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := rc.RoomTypes.Create(c.Request.Context(), &rt); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "room type created", gin.H{"insertedId": rt.ID})
}

func (rc *RoomTypeController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req roomTypeUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	var in services.RoomTypeUpdate
	if err := copier.Copy(&in, &req); err != nil {
		utils.RespondError(c, err)
		return
	}

	rt, err := rc.RoomTypes.Update(c.Request.Context(), id, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "room type updated", gin.H{"room_type": rt})
}

func (rc *RoomTypeController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := rc.RoomTypes.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "room type deleted", nil)
}
