// Package calendar implements the date arithmetic the vesting schedule is
// built on.
//
// The standard library normalizes out-of-range dates (October 32 becomes
// November 1). Release schedules must not behave that way: adding a month to
// January 31 lands on the last day of February, it does not roll over into
// March. All month and year arithmetic in this package clamps the day of the
// month instead of normalizing.
package calendar

import (
	"time"

	"github.com/emberfi/ember/errors"
)

// SecondsPerDay is the fixed length of a day used by elapsed day
// computation. Calendar days observed by the ledger have no leap seconds.
const SecondsPerDay = 24 * 60 * 60

// DiffDays returns the number of whole days elapsed between from and to.
// A partial day does not count. It is an error for from to be after to.
func DiffDays(from, to time.Time) (int64, error) {
	if from.After(to) {
		return 0, errors.Wrap(errors.ErrInput, "from after to")
	}
	diff := to.Unix() - from.Unix()
	return diff / SecondsPerDay, nil
}

// Date is a civil date decomposition of a point in time.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf decomposes given time into its civil date in UTC.
func DateOf(t time.Time) Date {
	year, month, day := t.UTC().Date()
	return Date{Year: year, Month: month, Day: day}
}

// AddDays moves the time by given number of days. Days may be negative.
func AddDays(t time.Time, days int) time.Time {
	return t.Add(time.Duration(days) * 24 * time.Hour)
}

// SubDays moves the time back by given number of days.
func SubDays(t time.Time, days int) time.Time {
	return AddDays(t, -days)
}

// AddMonths moves the time by given number of months, clamping the day of
// the month to the length of the target month. The time of day is
// preserved.
//
//	Jan 31 + 1 month = Feb 28 (29 in a leap year)
//	Mar 31 - 1 month = Feb 28, never Mar 3
func AddMonths(t time.Time, months int) time.Time {
	t = t.UTC()
	year, month, day := t.Date()

	// Zero-based total month index keeps the arithmetic branchless for
	// negative values.
	total := year*12 + int(month) - 1 + months
	newYear := total / 12
	newMonth := time.Month(total%12 + 1)
	if total < 0 && total%12 != 0 {
		newYear--
		newMonth = time.Month(total%12 + 13)
	}

	if max := DaysInMonth(newYear, newMonth); day > max {
		day = max
	}

	hour, min, sec := t.Clock()
	return time.Date(newYear, newMonth, day, hour, min, sec, t.Nanosecond(), time.UTC)
}

// SubMonths moves the time back by given number of months with the same
// clamping rules as AddMonths.
func SubMonths(t time.Time, months int) time.Time {
	return AddMonths(t, -months)
}

// AddYears moves the time by given number of years, clamping February 29 to
// February 28 on non-leap target years.
func AddYears(t time.Time, years int) time.Time {
	return AddMonths(t, years*12)
}

// DaysInMonth returns the number of days of the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeapYear returns true for years with a February 29.
func IsLeapYear(year int) bool {
	return DaysInMonth(year, time.February) == 29
}
