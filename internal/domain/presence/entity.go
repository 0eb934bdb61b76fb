package presence

import (
	"time"
)

// Record is one day of presence for a user. Only the clock part of
// Start and End is meaningful.
type Record struct {
	Start time.Time
	End   time.Time
}

// UserRecords maps a calendar date (UTC midnight) to the presence on that
// day. Dates keeps the order in which each date was first put, which is the
// row order of the source file.
type UserRecords struct {
	Dates []time.Time
	Days  map[time.Time]Record
}

func NewUserRecords() *UserRecords {
	return &UserRecords{
		Days: make(map[time.Time]Record),
	}
}

// Put stores record for date. A repeated date overwrites the earlier record
// but keeps its original position.
func (u *UserRecords) Put(date time.Time, record Record) {
	if _, ok := u.Days[date]; !ok {
		u.Dates = append(u.Dates, date)
	}
	u.Days[date] = record
}

func (u *UserRecords) Len() int {
	return len(u.Dates)
}

// Table maps user id to that user's presence days. It is built fresh from the
// source file on every load and never mutated afterwards.
type Table map[int]*UserRecords

// DaysInWeek is the number of weekday buckets, Monday (0) through Sunday (6).
const DaysInWeek = 7

var weekdayAbbr = [DaysInWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekdayAbbr returns the three letter English name of a Monday-based weekday index.
func WeekdayAbbr(weekday int) string {
	return weekdayAbbr[weekday]
}

// WeekdayIndex converts a date to its Monday-based bucket index.
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % DaysInWeek
}

// StartEndBucket collects clock-in and clock-out times, in seconds since
// midnight, of every record falling on one weekday.
type StartEndBucket struct {
	Weekday string
	Start   []int
	End     []int
}
