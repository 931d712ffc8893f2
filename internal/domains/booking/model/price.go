package model

import (
	"carehub/shared/failure"
	"math"
	"time"
)

const (
	MsgEndBeforeStart = "End time must be after start time"
	MsgStartInPast    = "Start time cannot be in the past"
	MsgChildrenAges   = "Number of children ages must match number of children"

	centsPerUnit = 100
)

// DurationHours is the length of one service window in fractional hours.
func DurationHours(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// ComputePrice is hourlyRate x window hours x days, rounded to cents.
func ComputePrice(hourlyRate float64, start, end time.Time, days int) float64 {
	price := hourlyRate * DurationHours(start, end) * float64(days)

	return math.Round(price*centsPerUnit) / centsPerUnit
}

// ValidateSchedule checks the window ordering first, then that it does not start before now.
func ValidateSchedule(start, end, now time.Time) error {
	if !end.After(start) {
		return failure.BadRequestFromString(MsgEndBeforeStart) //nolint:wrapcheck
	}

	if start.Before(now) {
		return failure.BadRequestFromString(MsgStartInPast) //nolint:wrapcheck
	}

	return nil
}

func ValidateChildrenAges(numberOfChildren int, ages []int64) error {
	if len(ages) != numberOfChildren {
		return failure.BadRequestFromString(MsgChildrenAges) //nolint:wrapcheck
	}

	return nil
}
