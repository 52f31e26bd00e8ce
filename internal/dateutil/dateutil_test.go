package dateutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayRange(t *testing.T) {
	for _, n := range []int{1, 2, 7, 30} {
		days := DayRange(n)
		require.Len(t, days, n)

		seen := make(map[string]bool)
		for i, day := range days {
			assert.True(t, IsValidDay(day), "day %q should be valid", day)
			assert.False(t, seen[day], "day %q should be unique", day)
			seen[day] = true
			if i > 0 {
				assert.Less(t, days[i-1], day, "days should be chronologically ordered")
			}
		}

		assert.Equal(t, Today(), days[n-1], "last day should be today")
	}
}

func TestDayRangeZeroOrNegative(t *testing.T) {
	assert.Empty(t, DayRange(0))
	assert.Empty(t, DayRange(-3))
}

func TestDayRangeFrom(t *testing.T) {
	tests := []struct {
		name string
		end  string
		n    int
		want []string
	}{
		{
			name: "within one month",
			end:  "2024-01-10",
			n:    3,
			want: []string{"2024-01-08", "2024-01-09", "2024-01-10"},
		},
		{
			name: "leap year february boundary",
			end:  "2024-03-02",
			n:    4,
			want: []string{"2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"},
		},
		{
			name: "year boundary",
			end:  "2024-01-01",
			n:    2,
			want: []string{"2023-12-31", "2024-01-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DayRangeFrom(tt.end, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDayRangeFromInvalid(t *testing.T) {
	_, err := DayRangeFrom("not-a-day", 7)
	assert.Error(t, err)
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2024-01-01", -1)
	require.NoError(t, err)
	assert.Equal(t, "2023-12-31", got)

	got, err = AddDays("2023-02-28", 1)
	require.NoError(t, err)
	assert.Equal(t, "2023-03-01", got)

	got, err = AddDays("2024-06-15", 0)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", got)

	_, err = AddDays("garbage", 1)
	assert.Error(t, err)
}

func TestIsToday(t *testing.T) {
	assert.True(t, IsToday(Today()))

	yesterday, err := AddDays(Today(), -1)
	require.NoError(t, err)
	assert.False(t, IsToday(yesterday))
}

func TestIsValidDay(t *testing.T) {
	assert.True(t, IsValidDay("2024-01-31"))
	assert.False(t, IsValidDay("2024-1-31"))
	assert.False(t, IsValidDay("2024-02-30"))
	assert.False(t, IsValidDay("today"))
	assert.False(t, IsValidDay(""))
}
