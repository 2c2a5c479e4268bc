package controllers

import (
	"net/http"

	"hotel-management/middleware"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReservationController struct {
	Reservations *services.ReservationService
	Store        *services.FileStore
	log          *zap.Logger
}

func NewReservationController(reservations *services.ReservationService, store *services.FileStore, log *zap.Logger) *ReservationController {
	return &ReservationController{Reservations: reservations, Store: store, log: log}
}

// List GET /reservations?guest_id=&room_id=
func (rc *ReservationController) List(c *gin.Context) {
	guestID, ok := queryID(c, "guest_id")
	if !ok {
		return
	}
	roomID, ok := queryID(c, "room_id")
	if !ok {
		return
	}

	list, err := rc.Reservations.List(c.Request.Context(), stayFilter(roomID, guestID))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"reservations": list})
}

func (rc *ReservationController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := rc.Reservations.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"reservation": res})
}

// Make POST /makeReservation (multipart, optional id_picture)
func (rc *ReservationController) Make(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	in, err := req.input(middleware.UploadedFile(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	res, unused, err := rc.Reservations.Create(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	discardFile(rc.log, rc.Store, services.BucketIDPictures, unused)

	utils.JSONSuccess(c, http.StatusCreated, "reservation created", gin.H{
		"insertedId": res.ID,
		"guestId":    res.GuestID,
	})
}

// Confirm POST /confirmReservation/:id (multipart, optional replacement id_picture)
func (rc *ReservationController) Confirm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	stay, replaced, err := rc.Reservations.Confirm(c.Request.Context(), id, middleware.UploadedFile(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	discardFile(rc.log, rc.Store, services.BucketIDPictures, replaced)

	rc.log.Info("reservation confirmed", zap.Uint("reservation_id", id), zap.Uint("stay_record_id", stay.ID))
	utils.JSONSuccess(c, http.StatusOK, "reservation confirmed", gin.H{"stayRecordId": stay.ID})
}

func (rc *ReservationController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req bookingUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	upd, err := req.update()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	res, err := rc.Reservations.Update(c.Request.Context(), id, upd)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "reservation updated", gin.H{"reservation": res})
}

// Delete DELETE /deleteReservation/:id
func (rc *ReservationController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := rc.Reservations.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "reservation deleted", nil)
}
