package model

import (
	"time"

	"github.com/chenawi66/chefhu-2026/config"
	"github.com/chenawi66/chefhu-2026/shared/constant"
	"github.com/chenawi66/chefhu-2026/shared/timezone"
)

// DefaultSlots builds the seed schedule: every Saturday at the configured
// default time between the bounding months, minus the excluded dates.
func DefaultSlots(cfg *config.Config) []TimeSlot {
	sched := cfg.Schedule

	excluded := make(map[string]bool, len(sched.ExcludedDates))
	for _, date := range sched.ExcludedDates {
		excluded[date] = true
	}

	loc := timezone.GetLocation()
	start := time.Date(sched.StartYear, time.Month(sched.StartMonth), 1, 0, 0, 0, 0, loc)
	// Day zero of the following month is the last day of the end month.
	end := time.Date(sched.EndYear, time.Month(sched.EndMonth)+1, 0, 0, 0, 0, 0, loc)

	var slots []TimeSlot

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if day.Weekday() != time.Saturday {
			continue
		}

		date := day.Format(constant.DateFormat)
		if excluded[date] {
			continue
		}

		slots = append(slots, TimeSlot{Date: date, Times: []string{sched.DefaultTime}})
	}

	return slots
}
