package controllers

import (
	"net/http"

	"hotel-management/middleware"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

type RoomController struct {
	Rooms *services.RoomService
	Store *services.FileStore
	log   *zap.Logger
}

func NewRoomController(rooms *services.RoomService, store *services.FileStore, log *zap.Logger) *RoomController {
	return &RoomController{Rooms: rooms, Store: store, log: log}
}

type roomRequest struct {
	RoomNumber   string  `json:"room_number" form:"room_number"`
	RoomTypeID   uint    `json:"room_type_id" form:"room_type_id"`
	Rate         float64 `json:"rate" form:"rate"`
	StatusCodeID uint    `json:"status_code_id" form:"status_code_id"`
}

type roomUpdateRequest struct {
	RoomNumber   *string  `json:"room_number" form:"room_number"`
	RoomTypeID   *uint    `json:"room_type_id" form:"room_type_id"`
	Rate         *float64 `json:"rate" form:"rate"`
	StatusCodeID *uint    `json:"status_code_id" form:"status_code_id"`
}

// List GET /rooms?status_code_id=&room_type_id=
func (rc *RoomController) List(c *gin.Context) {
	var f services.RoomFilter
	var ok bool
	if f.StatusCodeID, ok = queryID(c, "status_code_id"); !ok {
		return
	}
	if f.RoomTypeID, ok = queryID(c, "room_type_id"); !ok {
		return
	}

	rooms, err := rc.Rooms.List(c.Request.Context(), f)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"rooms": rooms})
}

func (rc *RoomController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	room, err := rc.Rooms.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{
		"room":     room,
		"imageUrl": rc.Store.URL(services.BucketRooms, room.Image),
	})
}

// Create POST /rooms (multipart, image required)
func (rc *RoomController) Create(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	in := services.RoomInput{Image: middleware.UploadedFile(c)}
	if err := copier.Copy(&in, &req); err != nil {
		utils.RespondError(c, err)
		return
	}

	room, err := rc.Rooms.Create(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, "room created", gin.H{
		"insertedId": room.ID,
		"imageUrl":   rc.Store.URL(services.BucketRooms, room.Image),
	})
}

// Update PUT /rooms/:id (multipart, partial; a new image replaces the old file)
func (rc *RoomController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req roomUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	in := services.RoomUpdate{Image: middleware.UploadedFile(c)}
	if err := copier.Copy(&in, &req); err != nil {
		utils.RespondError(c, err)
		return
	}

	room, replaced, err := rc.Rooms.Update(c.Request.Context(), id, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	discardFile(rc.log, rc.Store, services.BucketRooms, replaced)

	utils.JSONSuccess(c, http.StatusOK, "room updated", gin.H{
		"room":     room,
		"imageUrl": rc.Store.URL(services.BucketRooms, room.Image),
	})
}

func (rc *RoomController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	room, err := rc.Rooms.Delete(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	discardFile(rc.log, rc.Store, services.BucketRooms, room.Image)
	utils.JSONSuccess(c, http.StatusOK, "room deleted", nil)
}

func (rc *RoomController) StatusCodes(c *gin.Context) {
	codes, err := rc.Rooms.ListStatusCodes(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"status_codes": codes})
}
