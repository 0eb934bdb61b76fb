package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDownloader struct {
	calls atomic.Int32
	err   error
}

func (c *countingDownloader) Download(ctx context.Context) error {
	c.calls.Add(1)
	return c.err
}

func TestScheduler_Start_RunsJobImmediately(t *testing.T) {
	s := NewScheduler()
	downloader := &countingDownloader{}
	NewDirectoryJobs(downloader, time.Hour).RegisterJobs(s)

	s.Start(context.Background())
	require.Eventually(t, func() bool {
		return downloader.calls.Load() == 1
	}, time.Second, 5*time.Millisecond)
	s.Stop()

	assert.Equal(t, int32(1), downloader.calls.Load())
}

func TestScheduler_JobErrorDoesNotStopOthers(t *testing.T) {
	s := NewScheduler()
	failing := &countingDownloader{err: errors.New("boom")}
	healthy := &countingDownloader{}
	s.AddJob("failing", 10*time.Millisecond, failing.Download)
	s.AddJob("healthy", 10*time.Millisecond, healthy.Download)

	s.Start(context.Background())
	require.Eventually(t, func() bool {
		return failing.calls.Load() >= 2 && healthy.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
	s.Stop()
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler()
	downloader := &countingDownloader{}
	NewDirectoryJobs(downloader, 10*time.Millisecond).RegisterJobs(s)

	s.Start(context.Background())
	require.Eventually(t, func() bool {
		return downloader.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
	s.Stop()

	after := downloader.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, downloader.calls.Load())

	// Stop is idempotent
	s.Stop()
}
