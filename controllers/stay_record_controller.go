package controllers

import (
	"net/http"

	"hotel-management/middleware"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StayRecordController struct {
	Stays   *services.StayRecordService
	Catalog *services.CatalogService
	Store   *services.FileStore
	log     *zap.Logger
}

func NewStayRecordController(stays *services.StayRecordService, catalog *services.CatalogService, store *services.FileStore, log *zap.Logger) *StayRecordController {
	return &StayRecordController{Stays: stays, Catalog: catalog, Store: store, log: log}
}

type paymentRequest struct {
	Amount              *float64 `json:"amount" form:"amount" binding:"required"`
	PaymentMethod       string   `json:"payment_method" form:"payment_method"`
	TotalServiceCharges float64  `json:"total_service_charges" form:"total_service_charges"`
	DiscountPercentage  float64  `json:"discount_percentage" form:"discount_percentage"`
	DiscountName        string   `json:"discount_name" form:"discount_name"`
}

type addServiceRequest struct {
	ServiceID uint `json:"service_id" form:"service_id" binding:"required"`
	Quantity  int  `json:"quantity" form:"quantity"`
}

// List GET /stay_records?guest_id=&room_id=
func (sc *StayRecordController) List(c *gin.Context) {
	guestID, ok := queryID(c, "guest_id")
	if !ok {
		return
	}
	roomID, ok := queryID(c, "room_id")
	if !ok {
		return
	}

	list, err := sc.Stays.List(c.Request.Context(), stayFilter(roomID, guestID))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"stay_records": list})
}

func (sc *StayRecordController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	stay, err := sc.Stays.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"stay_record": stay})
}

// Make POST /makeStayRecord checks in a walk-in guest (multipart, optional id_picture).
func (sc *StayRecordController) Make(c *gin.Context) {
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

	stay, replaced, err := sc.Stays.Create(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	discardFile(sc.log, sc.Store, services.BucketIDPictures, replaced)

	utils.JSONSuccess(c, http.StatusCreated, "stay record created", gin.H{
		"insertedId": stay.ID,
		"guestId":    stay.GuestID,
	})
}

func (sc *StayRecordController) Update(c *gin.Context) {
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

	stay, err := sc.Stays.Update(c.Request.Context(), id, upd)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "stay record updated", gin.H{"stay_record": stay})
}

func (sc *StayRecordController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := sc.Stays.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "stay record deleted", nil)
}

// Payment POST /stay_records/:id/payment
func (sc *StayRecordController) Payment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req paymentRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	in := services.PaymentInput{
		Amount:              *req.Amount,
		PaymentMethod:       req.PaymentMethod,
		TotalServiceCharges: req.TotalServiceCharges,
		DiscountPercentage:  req.DiscountPercentage,
		DiscountName:        req.DiscountName,
	}

	hist, err := sc.Stays.ProcessPayment(c.Request.Context(), id, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	sc.log.Info("payment processed",
		zap.Uint("stay_record_id", id),
		zap.Uint("history_id", hist.ID),
		zap.Float64("amount", hist.AmountPaid))
	utils.JSONSuccess(c, http.StatusCreated, "payment processed", gin.H{
		"historyId": hist.ID,
		"history":   hist,
	})
}

// Services GET /stay_records/:id/services
func (sc *StayRecordController) Services(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lines, err := sc.Catalog.ListLines(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"services": lines})
}

// AddService POST /stay_records/:id/services
func (sc *StayRecordController) AddService(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req addServiceRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	line, err := sc.Catalog.AddLine(c.Request.Context(), id, req.ServiceID, req.Quantity)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "service added", gin.H{"insertedId": line.ID, "line": line})
}
