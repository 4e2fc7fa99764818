package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/emberfi/ember/errors"
)

func TestDiffDays(t *testing.T) {
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	cases := map[string]struct {
		from, to time.Time
		want     int64
	}{
		"same instant": {
			from: base, to: base, want: 0,
		},
		"partial day does not count": {
			from: base, to: base.Add(23 * time.Hour), want: 0,
		},
		"exactly one day": {
			from: base, to: base.Add(24 * time.Hour), want: 1,
		},
		"one day and change": {
			from: base, to: base.Add(25 * time.Hour), want: 1,
		},
		"a month": {
			from: base, to: base.AddDate(0, 0, 31), want: 31,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := DiffDays(tc.from, tc.to)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := DiffDays(base.Add(time.Second), base)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestAddMonthsClamping(t *testing.T) {
	cases := map[string]struct {
		start  time.Time
		months int
		want   time.Time
	}{
		"plain month": {
			start:  time.Date(2024, time.April, 15, 8, 30, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, time.May, 15, 8, 30, 0, 0, time.UTC),
		},
		"jan 31 clamps to feb 29 in a leap year": {
			start:  time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		"jan 31 clamps to feb 28 otherwise": {
			start:  time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		"may 31 clamps to june 30": {
			start:  time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
		},
		"year boundary forward": {
			start:  time.Date(2023, time.November, 30, 0, 0, 0, 0, time.UTC),
			months: 3,
			want:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		"mar 31 backwards clamps, no rollover": {
			start:  time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
			months: -1,
			want:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		"year boundary backwards": {
			start:  time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			months: -2,
			want:   time.Date(2023, time.November, 15, 0, 0, 0, 0, time.UTC),
		},
		"many months backwards": {
			start:  time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
			months: -13,
			want:   time.Date(2022, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, AddMonths(tc.start, tc.months))
		})
	}
}

func TestAddYears(t *testing.T) {
	feb29 := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), AddYears(feb29, 1))
	assert.Equal(t, time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC), AddYears(feb29, 4))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 28, DaysInMonth(1900, time.February))
	assert.Equal(t, 29, DaysInMonth(2000, time.February))
	assert.Equal(t, 31, DaysInMonth(2024, time.December))
	assert.Equal(t, 30, DaysInMonth(2024, time.April))
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(2023))
	assert.False(t, IsLeapYear(1900))
}
