package cron

import (
	"context"
	"time"

	"github.com/niklaus3016/gaoqianleme/internal/domain"
	"github.com/niklaus3016/gaoqianleme/pkg/xcontext"
)

// DrawWatchCronJob polls the lottery for a new draw and forwards consolidated
// win notifications to the notify callback.
type DrawWatchCronJob struct {
	welfareDomain domain.WelfareDomain
	interval      time.Duration
	notify        func(domain.WinNotification)
}

func NewDrawWatchCronJob(
	welfareDomain domain.WelfareDomain,
	interval time.Duration,
	notify func(domain.WinNotification),
) *DrawWatchCronJob {
	return &DrawWatchCronJob{
		welfareDomain: welfareDomain,
		interval:      interval,
		notify:        notify,
	}
}

func (job *DrawWatchCronJob) Do(ctx context.Context) {
	notification, err := job.welfareDomain.CheckDrawResult(ctx)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot check lottery draw result: %v", err)
		return
	}

	if notification != nil && job.notify != nil {
		job.notify(*notification)
	}
}

func (job *DrawWatchCronJob) RunNow() bool {
	return true
}

func (job *DrawWatchCronJob) Next() time.Time {
	return time.Now().Add(job.interval)
}
