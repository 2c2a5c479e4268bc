package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-management/auth"
	"hotel-management/controllers"
	"hotel-management/middleware"
	"hotel-management/models"
	"hotel-management/services"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Auth         *controllers.AuthController
	Users        *controllers.UserController
	Rooms        *controllers.RoomController
	RoomTypes    *controllers.RoomTypeController
	Guests       *controllers.GuestController
	Reservations *controllers.ReservationController
	StayRecords  *controllers.StayRecordController
	Catalog      *controllers.CatalogController
	Discounts    *controllers.DiscountController
	Content      *controllers.ContentController
	History      *controllers.HistoryController

	Tokens *auth.Service
	Store  *services.FileStore
	Log    *zap.Logger
}

func SetupRouter(h Handlers, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(h.Log))

	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	for _, b := range services.Buckets {
		r.Static(b.MountPath(), h.Store.Dir(b))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	upload := func(field string, bucket services.Bucket, required bool) gin.HandlerFunc {
		return middleware.SingleFile(h.Store, h.Log, field, bucket, required)
	}

	// public
	r.POST("/login", h.Auth.Login)
	r.GET("/rooms", h.Rooms.List)
	r.GET("/rooms/:id", h.Rooms.Get)
	r.GET("/room_types", h.RoomTypes.List)
	r.GET("/room_types/:id", h.RoomTypes.Get)
	r.GET("/status_codes", h.Rooms.StatusCodes)
	r.GET("/services", h.Catalog.ListServices)
	r.GET("/services/:id", h.Catalog.GetService)
	r.GET("/discounts", h.Discounts.List)
	r.GET("/discounts/:id", h.Discounts.Get)
	r.GET("/ads", h.Content.ListAds)
	r.GET("/ads/:id", h.Content.GetAd)
	r.GET("/about_us", h.Content.AboutUs)
	r.POST("/makeReservation", upload("id_picture", services.BucketIDPictures, false), h.Reservations.Make)

	staff := r.Group("", middleware.JWTAuth(h.Tokens))
	{
		staff.POST("/rooms", upload("image", services.BucketRooms, true), h.Rooms.Create)
		staff.PUT("/rooms/:id", upload("image", services.BucketRooms, false), h.Rooms.Update)
		staff.DELETE("/rooms/:id", h.Rooms.Delete)

		staff.POST("/room_types", h.RoomTypes.Create)
		staff.PUT("/room_types/:id", h.RoomTypes.Update)
		staff.DELETE("/room_types/:id", h.RoomTypes.Delete)

		staff.GET("/guests", h.Guests.List)
		staff.GET("/guests/check_email", h.Guests.CheckEmail)
		staff.GET("/guests/:id", h.Guests.Get)
		staff.POST("/guests", upload("id_picture", services.BucketIDPictures, false), h.Guests.Create)
		staff.PUT("/guests/:id", upload("id_picture", services.BucketIDPictures, false), h.Guests.Update)
		staff.DELETE("/guests/:id", h.Guests.Delete)

		staff.GET("/reservations", h.Reservations.List)
		staff.GET("/reservations/:id", h.Reservations.Get)
		staff.POST("/confirmReservation/:id", upload("id_picture", services.BucketIDPictures, false), h.Reservations.Confirm)
		staff.PUT("/reservations/:id", h.Reservations.Update)
		staff.DELETE("/deleteReservation/:id", h.Reservations.Delete)

		staff.GET("/stay_records", h.StayRecords.List)
		staff.GET("/stay_records/:id", h.StayRecords.Get)
		staff.POST("/makeStayRecord", upload("id_picture", services.BucketIDPictures, false), h.StayRecords.Make)
		staff.PUT("/stay_records/:id", h.StayRecords.Update)
		staff.DELETE("/stay_records/:id", h.StayRecords.Delete)
		staff.POST("/stay_records/:id/payment", h.StayRecords.Payment)
		staff.GET("/stay_records/:id/services", h.StayRecords.Services)
		staff.POST("/stay_records/:id/services", h.StayRecords.AddService)

		staff.GET("/service_list", h.Catalog.ListLines)
		staff.POST("/service_list", h.Catalog.AddLine)
		staff.PUT("/service_list/:id", h.Catalog.UpdateLine)
		staff.DELETE("/service_list/:id", h.Catalog.DeleteLine)

		staff.POST("/services", h.Catalog.CreateService)
		staff.PUT("/services/:id", h.Catalog.UpdateService)
		staff.DELETE("/services/:id", h.Catalog.DeleteService)

		staff.POST("/discounts", h.Discounts.Create)
		staff.PUT("/discounts/:id", h.Discounts.Update)
		staff.DELETE("/discounts/:id", h.Discounts.Delete)

		staff.POST("/ads", upload("image", services.BucketAds, true), h.Content.CreateAd)
		staff.PUT("/ads/:id", upload("image", services.BucketAds, false), h.Content.UpdateAd)
		staff.DELETE("/ads/:id", h.Content.DeleteAd)
		staff.PUT("/about_us", h.Content.UpdateAboutUs)

		staff.GET("/history", h.History.List)
		staff.GET("/history/:id", h.History.Get)

		profile := staff.Group("/profile/:userId", middleware.RequireSelfOrRole("userId", models.RoleAdmin))
		{
			profile.GET("", h.Users.GetProfile)
			profile.PUT("", upload("profile_picture", services.BucketProfilePictures, false), h.Users.UpdateProfile)
			profile.DELETE("", h.Users.DeleteProfilePicture)
		}
	}

	admin := staff.Group("", middleware.RequireRole(models.RoleAdmin))
	{
		admin.POST("/register", h.Auth.Register)
		admin.GET("/users", h.Users.List)
		admin.GET("/users/:id", h.Users.Get)
		admin.PUT("/users/:id", h.Users.Update)
		admin.DELETE("/users/:id", h.Users.Delete)
	}

	return r
}
