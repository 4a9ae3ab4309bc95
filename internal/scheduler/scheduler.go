package scheduler

import (
	"fmt"
	"log"
	"time"

	"VixSentinel/internal/model"
	"VixSentinel/internal/recorder"
	"VixSentinel/internal/report"
	"VixSentinel/internal/vix"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the daily analysis task.
type Scheduler struct {
	Cron     *cron.Cron
	Service  *vix.Service
	Recorder recorder.Recorder

	VIXType      string
	CompareType  string
	Bins         int
	LookbackDays int
}

// NewScheduler creates a new Scheduler.
func NewScheduler(svc *vix.Service, rec recorder.Recorder, vixType, compareType string, bins, lookbackDays int) *Scheduler {
	return &Scheduler{
		Cron:         cron.New(cron.WithSeconds()),
		Service:      svc,
		Recorder:     rec,
		VIXType:      vixType,
		CompareType:  compareType,
		Bins:         bins,
		LookbackDays: lookbackDays,
	}
}

// RegisterDaily registers the daily analysis task.
func (s *Scheduler) RegisterDaily(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunDailyNow executes the daily task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunDailyNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily analysis")
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := today.AddDate(0, 0, -s.LookbackDays)

	base, err := s.Service.FetchVIXSeriesRange(s.VIXType, start, today)
	if err != nil {
		log.Printf("[ERROR] fetch %s series: %v", s.VIXType, err)
		return
	}
	if base.Len() == 0 {
		log.Printf("[WARN] no %s data in the last %d days, skipping", s.VIXType, s.LookbackDays)
		return
	}

	compare, err := s.Service.FetchVIXSeries(base, s.CompareType)
	if err != nil {
		log.Printf("[ERROR] fetch %s series: %v", s.CompareType, err)
		return
	}

	stats := &recorder.DependenceStats{
		Correlation: base.Correlation(compare),
		Points:      base.AlignWith(compare).Len(),
	}
	if mi, err := base.MutualInformation(compare, s.Bins); err != nil {
		log.Printf("[ERROR] mutual information: %v", err)
	} else {
		stats.MutualInformation = mi
	}

	ts, err := s.Service.FuturesTermStructure(today)
	if err != nil {
		log.Printf("[ERROR] futures term structure: %v", err)
		return
	}
	shape := vix.TermStructureType(ts)

	log.Printf("[INFO]\n%s", report.FormatDailyReport(today, ts, shape, stats))

	if err := s.Recorder.RecordTermStructure(today, ts); err != nil {
		log.Printf("[ERROR] record term structure: %v", err)
	}
	if err := s.Recorder.RecordShape(model.ShapePoint{Time: today, Shape: shape}); err != nil {
		log.Printf("[ERROR] record shape: %v", err)
	}
	if err := s.Recorder.RecordDependence(today, stats); err != nil {
		log.Printf("[ERROR] record dependence stats: %v", err)
	}
}
