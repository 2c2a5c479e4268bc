package controllers

import (
	"net/http"

	"hotel-management/middleware"
	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

// ContentController serves advertisements and the about-us page.
type ContentController struct {
	Content *services.ContentService
	Store   *services.FileStore
	log     *zap.Logger
}

func NewContentController(content *services.ContentService, store *services.FileStore, log *zap.Logger) *ContentController {
	return &ContentController{Content: content, Store: store, log: log}
}

type adRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

type adUpdateRequest struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
}

type aboutUsRequest struct {
	Title   *string `json:"title" form:"title"`
	Content *string `json:"content" form:"content"`
	Phone   *string `json:"phone" form:"phone"`
	Email   *string `json:"email" form:"email"`
	Address *string `json:"address" form:"address"`
}

func (cc *ContentController) ListAds(c *gin.Context) {
	ads, err := cc.Content.ListAds(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"ads": ads})
}

func (cc *ContentController) GetAd(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ad, err := cc.Content.GetAd(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{
		"ad":       ad,
		"imageUrl": cc.Store.URL(services.BucketAds, ad.Image),
	})
}

// CreateAd POST /ads (multipart, image required)
func (cc *ContentController) CreateAd(c *gin.Context) {
	var req adRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	ad := models.Ad{Image: middleware.UploadedFile(c)}
	if err := copier.Copy(&ad, &req); err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := cc.Content.CreateAd(c.Request.Context(), &ad); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "ad created", gin.H{
		"insertedId": ad.ID,
		"imageUrl":   cc.Store.URL(services.BucketAds, ad.Image),
	})
}

func (cc *ContentController) UpdateAd(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req adUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	in := services.AdUpdate{Image: middleware.UploadedFile(c)}
	if err := copier.Copy(&in, &req); err != nil {
		utils.RespondError(c, err)
		return
	}

	ad, replaced, err := cc.Content.UpdateAd(c.Request.Context(), id, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	discardFile(cc.log, cc.Store, services.BucketAds, replaced)
	utils.JSONSuccess(c, http.StatusOK, "ad updated", gin.H{"ad": ad})
}

func (cc *ContentController) DeleteAd(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ad, err := cc.Content.DeleteAd(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	discardFile(cc.log, cc.Store, services.BucketAds, ad.Image)
	utils.JSONSuccess(c, http.StatusOK, "ad deleted", nil)
}

func (cc *ContentController) AboutUs(c *gin.Context) {
	about, err := cc.Content.AboutUs(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"about_us": about})
}

func (cc *ContentController) UpdateAboutUs(c *gin.Context) {
	var req aboutUsRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	var in services.AboutUsUpdate
	if err := copier.Copy(&in, &req); err != nil {
		utils.RespondError(c, err)
		return
	}

	about, err := cc.Content.UpdateAboutUs(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "about us updated", gin.H{"about_us": about})
}
