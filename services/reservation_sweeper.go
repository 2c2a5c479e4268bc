package services

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// StartReservationSweeper purges expired reservations once at start-up and then every interval.
// The caller owns the returned scheduler and must Shutdown it.
func StartReservationSweeper(svc *ReservationService, interval time.Duration, log *zap.Logger) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { sweepReservations(svc, log) }),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName("reservation-sweeper"),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, err
	}

	s.Start()
	log.Info("reservation sweeper started", zap.Duration("interval", interval))
	return s, nil
}

func sweepReservations(svc *ReservationService, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := svc.PurgeExpired(ctx, svc.now())
	if err != nil {
		log.Warn("reservation sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		log.Info("expired reservations purged", zap.Int64("count", n))
	}
}
