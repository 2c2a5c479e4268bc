package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"hotel-management/auth"
	"hotel-management/config"
	"hotel-management/controllers"
	"hotel-management/logger"
	"hotel-management/routes"
	"hotel-management/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg, err := logger.New(cfg.Logger())
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	db, err := config.ConnectDatabase(cfg, lg)
	if err != nil {
		lg.Fatal("database connect failed", zap.Error(err))
	}
	lg.Info("database connection established and migrations applied")

	tokens, err := auth.NewService(auth.Config{Secret: cfg.JWTSecret, TTL: cfg.JWTTTL})
	if err != nil {
		lg.Fatal("token service", zap.Error(err))
	}

	// Initialize services
	store := services.NewFileStore(cfg.UploadDir)
	userService := services.NewUserService(db)
	roomService := services.NewRoomService(db)
	roomTypeService := services.NewRoomTypeService(db)
	guestService := services.NewGuestService(db)
	reservationService := services.NewReservationService(db)
	stayRecordService := services.NewStayRecordService(db)
	catalogService := services.NewCatalogService(db)
	discountService := services.NewDiscountService(db)
	contentService := services.NewContentService(db)
	historyService := services.NewHistoryService(db)

	sweeper, err := services.StartReservationSweeper(reservationService, cfg.SweepInterval, lg)
	if err != nil {
		lg.Fatal("start reservation sweeper", zap.Error(err))
	}

	// Initialize controllers
	router := routes.SetupRouter(routes.Handlers{
		Auth:         controllers.NewAuthController(userService, tokens, lg),
		Users:        controllers.NewUserController(userService, store, lg),
		Rooms:        controllers.NewRoomController(roomService, store, lg),
		RoomTypes:    controllers.NewRoomTypeController(roomTypeService),
		Guests:       controllers.NewGuestController(guestService, store, lg),
		Reservations: controllers.NewReservationController(reservationService, store, lg),
		StayRecords:  controllers.NewStayRecordController(stayRecordService, catalogService, store, lg),
		Catalog:      controllers.NewCatalogController(catalogService, lg),
		Discounts:    controllers.NewDiscountController(discountService),
		Content:      controllers.NewContentController(contentService, store, lg),
		History:      controllers.NewHistoryController(historyService),
		Tokens:       tokens,
		Store:        store,
		Log:          lg,
	}, cfg.AllowedOrigins())

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		lg.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	lg.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lg.Error("server forced to shutdown", zap.Error(err))
	}
	if err := sweeper.Shutdown(); err != nil {
		lg.Warn("sweeper shutdown", zap.Error(err))
	}

	lg.Info("server stopped gracefully")
}
