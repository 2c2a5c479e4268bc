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

type UserController struct {
	Users *services.UserService
	Store *services.FileStore
	log   *zap.Logger
}

func NewUserController(users *services.UserService, store *services.FileStore, log *zap.Logger) *UserController {
	return &UserController{Users: users, Store: store, log: log}
}

type userUpdateRequest struct {
	Username *string `json:"username" form:"username"`
	Password *string `json:"password" form:"password"`
	Role     *string `json:"role" form:"role"`
}

type profileUpdateRequest struct {
	FullName *string `json:"full_name" form:"full_name"`
	Email    *string `json:"email" form:"email"`
	Phone    *string `json:"phone" form:"phone"`
	Address  *string `json:"address" form:"address"`
}

func (uc *UserController) List(c *gin.Context) {
	users, err := uc.Users.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"users": users})
}

func (uc *UserController) Get(c *gin.Context) {
	user, err := uc.Users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"user": user})
}

func (uc *UserController) Update(c *gin.Context) {
	var req userUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	var in services.UserUpdate
	if err := copier.Copy(&in, &req); err != nil {
		utils.RespondError(c, err)
		return
	}

	user, err := uc.Users.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "user updated", gin.H{"user": user})
}

// Delete removes the user with its profile, then the profile picture.
func (uc *UserController) Delete(c *gin.Context) {
	user, err := uc.Users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if user.Profile != nil {
		discardFile(uc.log, uc.Store, services.BucketProfilePictures, user.Profile.ProfilePicture)
	}
	utils.JSONSuccess(c, http.StatusOK, "user deleted", nil)
}

func (uc *UserController) GetProfile(c *gin.Context) {
	profile, err := uc.Users.GetProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{
		"profile":    profile,
		"pictureUrl": uc.Store.URL(services.BucketProfilePictures, profile.ProfilePicture),
	})
}

// UpdateProfile PUT /profile/:userId (multipart, optional profile_picture)
func (uc *UserController) UpdateProfile(c *gin.Context) {
	var req profileUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	in := services.ProfileUpdate{ProfilePicture: middleware.UploadedFile(c)}
	if err := copier.Copy(&in, &req); err != nil {
		utils.RespondError(c, err)
		return
	}

	profile, replaced, err := uc.Users.UpdateProfile(c.Request.Context(), c.Param("userId"), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	discardFile(uc.log, uc.Store, services.BucketProfilePictures, replaced)

	utils.JSONSuccess(c, http.StatusOK, "profile updated", gin.H{
		"profile":    profile,
		"pictureUrl": uc.Store.URL(services.BucketProfilePictures, profile.ProfilePicture),
	})
}

// DeleteProfilePicture DELETE /profile/:userId resets the picture to the placeholder.
func (uc *UserController) DeleteProfilePicture(c *gin.Context) {
	old, err := uc.Users.ResetProfilePicture(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	discardFile(uc.log, uc.Store, services.BucketProfilePictures, old)
	utils.JSONSuccess(c, http.StatusOK, "profile picture removed", nil)
}
