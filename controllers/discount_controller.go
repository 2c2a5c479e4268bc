package controllers

import (
	"net/http"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type DiscountController struct {
	Discounts *services.DiscountService
}

func NewDiscountController(discounts *services.DiscountService) *DiscountController {
	return &DiscountController{Discounts: discounts}
}

type discountRequest struct {
	Name       string  `json:"name" form:"name"`
	Percentage float64 `json:"percentage" form:"percentage"`
}

type discountUpdateRequest struct {
	Name       *string  `json:"name" form:"name"`
	Percentage *float64 `json:"percentage" form:"percentage"`
}

func (dc *DiscountController) List(c *gin.Context) {
	list, err := dc.Discounts.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"discounts": list})
}

func (dc *DiscountController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	d, err := dc.Discounts.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"discount": d})
}

func (dc *DiscountController) Create(c *gin.Context) {
	var req discountRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	var d models.Discount
	if err := copier.Copy(&d, &req); err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := dc.Discounts.Create(c.Request.Context(), &d); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "discount created", gin.H{"insertedId": d.ID})
}

func (dc *DiscountController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req discountUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	var in services.DiscountUpdate
	if err := copier.Copy(&in, &req); err != nil {
		utils.RespondError(c, err)
		return
	}

	d, err := dc.Discounts.Update(c.Request.Context(), id, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "discount updated", gin.H{"discount": d})
}

func (dc *DiscountController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := dc.Discounts.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "discount deleted", nil)
}
