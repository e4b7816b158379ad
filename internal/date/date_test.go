package date

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2024-01-01", New(2024, time.January, 1), false},
		{"2024-1-5", New(2024, time.January, 5), false},
		{"2024-03-10T12:30:00Z", New(2024, time.March, 10), false},
		{"2024/01/01", New(2024, time.January, 1), false},
		{"2024/3/9", New(2024, time.March, 9), false},
		{"2024/13/01", Date{}, true},
		{"01/02/2024", Date{}, true},
		{"", Date{}, true},
		{"yesterday", Date{}, true},
		{"2024-13-01", Date{}, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "Parse(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "Parse(%q)", tt.in)
		assert.Equal(t, tt.want, got, "Parse(%q)", tt.in)
	}
}

func TestDaysSince(t *testing.T) {
	ref := MustParse("2024-03-01")

	assert.Equal(t, 0, ref.DaysSince(ref))
	assert.Equal(t, 60, ref.DaysSince(MustParse("2024-01-01"))) // leap year
	// Future dates still yield a positive distance.
	assert.Equal(t, 10, ref.DaysSince(MustParse("2024-03-11")))
}

func TestDaysSinceLongSpans(t *testing.T) {
	ref := MustParse("2026-10-15")
	tests := []struct {
		in   string
		want int
	}{
		{"1700-01-01", 119356},
		{"1000-01-01", 375026},
		{"0024-01-01", 731503},
		{"9999-12-31", 2912155},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ref.DaysSince(MustParse(tt.in)), "DaysSince(%s)", tt.in)
		assert.Equal(t, tt.want, MustParse(tt.in).DaysSince(ref), "reversed %s", tt.in)
	}
}

func TestNewNormalizes(t *testing.T) {
	assert.Equal(t, MustParse("2024-03-01"), New(2024, time.February, 30))
	assert.Equal(t, MustParse("2023-12-31"), MustParse("2024-01-01").AddDays(-1))
}

func TestJSON(t *testing.T) {
	d := MustParse("2024-07-04")
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-07-04"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)

	var empty Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.True(t, empty.IsZero())
}

func TestScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-02-29"))
	assert.Equal(t, New(2024, time.February, 29), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}
