package infra

import (
	"log"

	"github.com/robfig/cron/v3"

	"goldmarket/internal/service"
)

// Scheduler drives the live price feed refresh
type Scheduler struct {
	cron         *cron.Cron
	priceService *service.LivePriceService
}

// NewScheduler creates a new scheduler
func NewScheduler(priceService *service.LivePriceService) *Scheduler {
	return &Scheduler{
		cron:         cron.New(cron.WithSeconds()),
		priceService: priceService,
	}
}

// Start begins the 10-second price refresh cycle
func (s *Scheduler) Start() error {
	log.Println("Starting price feed scheduler...")

	_, err := s.cron.AddFunc("*/10 * * * * *", func() {
		s.priceService.Refresh()
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Println("[OK] Scheduler started: price refresh every 10s")

	return nil
}

// Stop stops the scheduler gracefully
func (s *Scheduler) Stop() {
	log.Println("Stopping scheduler...")
	s.cron.Stop()
	log.Println("[OK] Scheduler stopped")
}
