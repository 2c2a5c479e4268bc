package controllers

import (
	"net/http"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

// CatalogController serves the service catalogue and the per-stay service list.
type CatalogController struct {
	Catalog *services.CatalogService
	log     *zap.Logger
}

func NewCatalogController(catalog *services.CatalogService, log *zap.Logger) *CatalogController {
	return &CatalogController{Catalog: catalog, log: log}
}

type serviceRequest struct {
	Name        string  `json:"name" form:"name"`
	Price       float64 `json:"price" form:"price"`
	Description string  `json:"description" form:"description"`
}

type serviceUpdateRequest struct {
	Name        *string  `json:"name" form:"name"`
	Price       *float64 `json:"price" form:"price"`
	Description *string  `json:"description" form:"description"`
}

type lineRequest struct {
	StayRecordID uint `json:"stay_record_id" form:"stay_record_id"`
	ServiceID    uint `json:"service_id" form:"service_id"`
	Quantity     int  `json:"quantity" form:"quantity"`
}

type lineUpdateRequest struct {
	Quantity int `json:"quantity" form:"quantity" binding:"required"`
}

func (cc *CatalogController) ListServices(c *gin.Context) {
	list, err := cc.Catalog.ListServices(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"services": list})
}

func (cc *CatalogController) GetService(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	svc, err := cc.Catalog.GetService(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"service": svc})
}

func (cc *CatalogController) CreateService(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	var svc models.Service
	if err := copier.Copy(&svc, &req); err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := cc.Catalog.CreateService(c.Request.Context(), &svc); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "service created", gin.H{"insertedId": svc.ID})
}

func (cc *CatalogController) UpdateService(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req serviceUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	var in services.ServiceUpdate
	if err := copier.Copy(&in, &req); err != nil {
		utils.RespondError(c, err)
		return
	}

	svc, err := cc.Catalog.UpdateService(c.Request.Context(), id, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "service updated", gin.H{"service": svc})
}

func (cc *CatalogController) DeleteService(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := cc.Catalog.DeleteService(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "service deleted", nil)
}

// ListLines GET /service_list?stay_record_id=
func (cc *CatalogController) ListLines(c *gin.Context) {
	stayID, ok := queryID(c, "stay_record_id")
	if !ok {
		return
	}
	lines, err := cc.Catalog.ListLines(c.Request.Context(), stayID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"service_list": lines})
}

// AddLine POST /service_list
func (cc *CatalogController) AddLine(c *gin.Context) {
	var req lineRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	line, err := cc.Catalog.AddLine(c.Request.Context(), req.StayRecordID, req.ServiceID, req.Quantity)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "service added", gin.H{"insertedId": line.ID, "line": line})
}

func (cc *CatalogController) UpdateLine(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req lineUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	line, err := cc.Catalog.UpdateLine(c.Request.Context(), id, req.Quantity)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "service line updated", gin.H{"line": line})
}

func (cc *CatalogController) DeleteLine(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := cc.Catalog.DeleteLine(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "service line deleted", nil)
}
