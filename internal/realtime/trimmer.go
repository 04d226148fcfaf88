package realtime

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const trimTimeout = 30 * time.Second

// Trimmer runs Feed.Trim on a cron schedule.
type Trimmer struct {
	feed     *Feed
	keep     int
	schedule string
	logger   *zap.Logger
	cron     *cron.Cron
}

func NewTrimmer(feed *Feed, keep int, schedule string, logger *zap.Logger) *Trimmer {
	return &Trimmer{
		feed:     feed,
		keep:     keep,
		schedule: schedule,
		logger:   logger,
	}
}

// Start registers the job and starts the scheduler. A zero keep disables
// trimming and Start does nothing.
func (t *Trimmer) Start() error {
	if t.keep <= 0 {
		t.logger.Info("live feed trimming disabled")
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(t.schedule, t.RunOnce); err != nil {
		return fmt.Errorf("schedule live feed trim %q: %w", t.schedule, err)
	}

	t.cron = c
	c.Start()
	t.logger.Info("live feed trimmer started", zap.String("schedule", t.schedule), zap.Int("keep", t.keep))
	return nil
}

// Stop halts the scheduler and waits for a running trim, or for ctx.
func (t *Trimmer) Stop(ctx context.Context) {
	if t.cron == nil {
		return
	}
	select {
	case <-t.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (t *Trimmer) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), trimTimeout)
	defer cancel()

	if _, err := t.feed.Trim(ctx, t.keep); err != nil {
		t.logger.Error("live feed trim failed", zap.Error(err))
	}
}
