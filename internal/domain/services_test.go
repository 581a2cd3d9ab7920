package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCostType_IsValid(t *testing.T) {
	assert.True(t, CostTypeHour.IsValid())
	assert.True(t, CostTypeDay.IsValid())
	assert.True(t, CostTypeMonth.IsValid())
	assert.False(t, CostType("week").IsValid())
	assert.False(t, CostType("").IsValid())
}

func TestWeekday_IsValid(t *testing.T) {
	for _, day := range []Weekday{
		WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday,
		WeekdayFriday, WeekdaySaturday, WeekdaySunday,
	} {
		assert.True(t, day.IsValid(), "день %s должен быть допустимым", day)
	}

	assert.False(t, Weekday("Monday").IsValid())
	assert.False(t, Weekday("someday").IsValid())
}

func TestNormalizeWeekday(t *testing.T) {
	tests := []struct {
		in   string
		want Weekday
	}{
		{"monday", WeekdayMonday},
		{"MONDAY", WeekdayMonday},
		{"  Friday ", WeekdayFriday},
		{"sunday\n", WeekdaySunday},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeWeekday(tt.in))
	}
}

func TestShiftType_IsValid(t *testing.T) {
	assert.True(t, ShiftFullDay.IsValid())
	assert.True(t, ShiftMorning.IsValid())
	assert.True(t, ShiftAfternoon.IsValid())
	assert.True(t, ShiftEvening.IsValid())
	assert.False(t, ShiftType("night").IsValid())
}
