package cron

import (
	"context"
	"time"
)

// UsersDownloader refreshes the local copy of the users directory
type UsersDownloader interface {
	Download(ctx context.Context) error
}

// DirectoryJobs keeps the users XML in sync with the intranet
type DirectoryJobs struct {
	downloader UsersDownloader
	interval   time.Duration
}

func NewDirectoryJobs(downloader UsersDownloader, interval time.Duration) *DirectoryJobs {
	return &DirectoryJobs{
		downloader: downloader,
		interval:   interval,
	}
}

func (j *DirectoryJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("refresh_users_xml", j.interval, j.downloader.Download)
}
