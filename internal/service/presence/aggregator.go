package presence

import (
	"strconv"
	"time"

	"github.com/cmlabs-hris/presence-analyzer/internal/domain/presence"
)

// AverageClockLayout renders an epoch-anchored average, e.g. "1970 01 01 00:00:15".
const AverageClockLayout = "2006 01 02 15:04:05"

// SecondsSinceMidnight returns the clock part of t as seconds.
func SecondsSinceMidnight(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// Interval returns end minus start in seconds. Negative when end precedes start.
func Interval(start, end time.Time) int {
	return SecondsSinceMidnight(end) - SecondsSinceMidnight(start)
}

// GroupByWeekday buckets the presence intervals of one user by weekday,
// Monday first, each bucket in source row order. Every bucket is non-nil.
func GroupByWeekday(items *presence.UserRecords) [presence.DaysInWeek][]int {
	var result [presence.DaysInWeek][]int
	for i := range result {
		result[i] = []int{}
	}

	for _, date := range items.Dates {
		record := items.Days[date]
		weekday := presence.WeekdayIndex(date)
		result[weekday] = append(result[weekday], Interval(record.Start, record.End))
	}
	return result
}

// GroupByWeekdayStartEnd collects start and end seconds per weekday. Only
// weekdays with at least one record are present.
func GroupByWeekdayStartEnd(items *presence.UserRecords) map[int]*presence.StartEndBucket {
	result := make(map[int]*presence.StartEndBucket)

	for _, date := range items.Dates {
		record := items.Days[date]
		weekday := presence.WeekdayIndex(date)

		bucket, ok := result[weekday]
		if !ok {
			bucket = &presence.StartEndBucket{
				Weekday: presence.WeekdayAbbr(weekday),
				Start:   []int{},
				End:     []int{},
			}
			result[weekday] = bucket
		}
		bucket.Start = append(bucket.Start, SecondsSinceMidnight(record.Start))
		bucket.End = append(bucket.End, SecondsSinceMidnight(record.End))
	}
	return result
}

// Sum adds up items
func Sum(items []int) int {
	total := 0
	for _, item := range items {
		total += item
	}
	return total
}

// Mean returns the arithmetic mean of items, or zero for an empty slice.
func Mean(items []int) float64 {
	if len(items) == 0 {
		return 0
	}
	return float64(Sum(items)) / float64(len(items))
}

// AverageClockString formats the mean of items as a UTC date-time counted
// from the Unix epoch. Means of a day or more roll into later dates.
func AverageClockString(items []int) string {
	return time.Unix(int64(Mean(items)), 0).UTC().Format(AverageClockLayout)
}

// AverageTimeByWeekday reduces every bucket to its average start and end,
// keyed by the weekday index.
func AverageTimeByWeekday(buckets map[int]*presence.StartEndBucket) map[string]presence.StartEndSummary {
	result := make(map[string]presence.StartEndSummary, len(buckets))
	for weekday, bucket := range buckets {
		result[strconv.Itoa(weekday)] = presence.StartEndSummary{
			Start:   AverageClockString(bucket.Start),
			End:     AverageClockString(bucket.End),
			Weekday: bucket.Weekday,
		}
	}
	return result
}

// MeanByWeekday pairs every weekday abbreviation with its mean interval.
func MeanByWeekday(items *presence.UserRecords) []presence.Row {
	weekdays := GroupByWeekday(items)
	result := make([]presence.Row, 0, presence.DaysInWeek)
	for weekday, intervals := range weekdays {
		result = append(result, presence.Row{
			Label: presence.WeekdayAbbr(weekday),
			Value: Mean(intervals),
		})
	}
	return result
}

// TotalByWeekday pairs every weekday abbreviation with its summed intervals,
// preceded by presence.PresenceHeader.
func TotalByWeekday(items *presence.UserRecords) []presence.Row {
	weekdays := GroupByWeekday(items)
	result := make([]presence.Row, 0, presence.DaysInWeek+1)
	result = append(result, presence.PresenceHeader)
	for weekday, intervals := range weekdays {
		result = append(result, presence.Row{
			Label: presence.WeekdayAbbr(weekday),
			Value: Sum(intervals),
		})
	}
	return result
}
