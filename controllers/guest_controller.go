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

type GuestController struct {
	Guests *services.GuestService
	Store  *services.FileStore
	log    *zap.Logger
}

func NewGuestController(guests *services.GuestService, store *services.FileStore, log *zap.Logger) *GuestController {
	return &GuestController{Guests: guests, Store: store, log: log}
}

type guestRequest struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
	Phone string `json:"phone" form:"phone"`
}

type guestUpdateRequest struct {
	Name  *string `json:"name" form:"name"`
	Email *string `json:"email" form:"email"`
	Phone *string `json:"phone" form:"phone"`
}

// List GET /guests?email=
func (gc *GuestController) List(c *gin.Context) {
	guests, err := gc.Guests.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"guests": guests})
}

func (gc *GuestController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	guest, err := gc.Guests.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{
		"guest":        guest,
		"idPictureUrl": gc.Store.URL(services.BucketIDPictures, guest.IDPicture),
	})
}

// Create POST /guests (multipart, optional id_picture)
func (gc *GuestController) Create(c *gin.Context) {
	var req guestRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	in := services.GuestInput{IDPicture: middleware.UploadedFile(c)}
	if err := copier.Copy(&in, &req); err != nil {
		utils.RespondError(c, err)
		return
	}

	guest, err := gc.Guests.Create(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "guest created", gin.H{"insertedId": guest.ID})
}

func (gc *GuestController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req guestUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	in := services.GuestUpdate{IDPicture: middleware.UploadedFile(c)}
	if err := copier.Copy(&in, &req); err != nil {
		utils.RespondError(c, err)
		return
	}

	guest, replaced, err := gc.Guests.Update(c.Request.Context(), id, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	discardFile(gc.log, gc.Store, services.BucketIDPictures, replaced)
	utils.JSONSuccess(c, http.StatusOK, "guest updated", gin.H{"guest": guest})
}

func (gc *GuestController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	guest, err := gc.Guests.Delete(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	discardFile(gc.log, gc.Store, services.BucketIDPictures, guest.IDPicture)
	utils.JSONSuccess(c, http.StatusOK, "guest deleted", nil)
}

// CheckEmail GET /guests/check_email?email=&guest_id=
// The guest's own row is excluded so editing a guest without changing the email is not a conflict.
func (gc *GuestController) CheckEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.JSONError(c, http.StatusBadRequest, "email is required")
		return
	}
	exclude, ok := queryID(c, "guest_id")
	if !ok {
		return
	}

	conflict, err := gc.Guests.EmailConflict(c.Request.Context(), email, exclude)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"conflict": conflict})
}
