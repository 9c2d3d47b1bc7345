package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// planRefreshTimeout bounds a single refresh run.
const planRefreshTimeout = 5 * time.Minute

// SchedulerService runs background jobs on cron schedules.
type SchedulerService struct {
	cron *cron.Cron
}

// NewSchedulerService creates a scheduler whose specs carry a seconds field
// and are evaluated in loc.
func NewSchedulerService(loc *time.Location) *SchedulerService {
	if loc == nil {
		loc = time.UTC
	}
	return &SchedulerService{
		cron: cron.New(cron.WithLocation(loc), cron.WithSeconds()),
	}
}

// SchedulePlanRefresh registers a job that tops up every user's upcoming
// meal plans on the given six-field cron spec.
func (s *SchedulerService) SchedulePlanRefresh(spec string, plans MealPlanService) (cron.EntryID, error) {
	if spec == "" {
		return 0, fmt.Errorf("plan refresh spec cannot be empty")
	}
	id, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), planRefreshTimeout)
		defer cancel()
		log.Println("INFO: [Scheduler] Starting scheduled meal plan refresh.")
		if err := plans.RefreshAllUpcomingPlans(ctx); err != nil {
			log.Printf("ERROR: [Scheduler] Scheduled meal plan refresh finished with errors: %v", err)
		}
	})
	if err != nil {
		return 0, fmt.Errorf("invalid plan refresh spec %q: %w", spec, err)
	}
	log.Printf("INFO: [Scheduler] Meal plan refresh scheduled with spec '%s'.", spec)
	return id, nil
}

// Entries returns the number of registered jobs.
func (s *SchedulerService) Entries() int {
	return len(s.cron.Entries())
}

func (s *SchedulerService) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs to finish.
func (s *SchedulerService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
