package model

import (
	"slices"
	"strings"
)

// HasSlot reports whether the given date and time is currently open.
func HasSlot(slots []TimeSlot, date, timeOfDay string) bool {
	for _, slot := range slots {
		if slot.Date == date && slices.Contains(slot.Times, timeOfDay) {
			return true
		}
	}

	return false
}

// OpenSlot ensures the time appears exactly once under the date and keeps
// the list sorted by date ascending. Calling it twice is a no-op.
func OpenSlot(slots []TimeSlot, date, timeOfDay string) []TimeSlot {
	found := false

	for i := range slots {
		if slots[i].Date != date {
			continue
		}

		found = true

		if !slices.Contains(slots[i].Times, timeOfDay) {
			slots[i].Times = append(slots[i].Times, timeOfDay)
			slices.Sort(slots[i].Times)
		}

		break
	}

	if !found {
		slots = append(slots, TimeSlot{Date: date, Times: []string{timeOfDay}})
	}

	slices.SortFunc(slots, func(a, b TimeSlot) int {
		return strings.Compare(a.Date, b.Date)
	})

	return slots
}

// CloseSlot removes the time from the date's entry and drops the entry
// entirely once its last time is gone.
func CloseSlot(slots []TimeSlot, date, timeOfDay string) []TimeSlot {
	result := slots[:0]

	for _, slot := range slots {
		if slot.Date == date {
			times := slices.DeleteFunc(slices.Clone(slot.Times), func(t string) bool {
				return t == timeOfDay
			})

			if len(times) == 0 {
				continue
			}

			slot.Times = times
		}

		result = append(result, slot)
	}

	return result
}
