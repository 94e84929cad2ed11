package duration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Duration
	}{
		{
			name:     "should parse a canonical duration string",
			input:    "01:30:00",
			expected: Duration{Hours: 1, Minutes: 30, Seconds: 0},
		},
		{
			name:     "should parse hours beyond two digits",
			input:    "120:05:09",
			expected: Duration{Hours: 120, Minutes: 5, Seconds: 9},
		},
		{
			name:     "should default empty input to zero",
			input:    "",
			expected: Zero,
		},
		{
			name:     "should default non-numeric components to zero",
			input:    "aa:15:bb",
			expected: Duration{Minutes: 15},
		},
		{
			name:     "should default missing components to zero",
			input:    "02:30",
			expected: Duration{Hours: 2, Minutes: 30},
		},
		{
			name:     "should ignore components past the third",
			input:    "01:02:03:04",
			expected: Duration{Hours: 1, Minutes: 2, Seconds: 3},
		},
		{
			name:     "should default negative components to zero",
			input:    "-1:30:00",
			expected: Duration{Minutes: 30},
		},
		{
			name:     "should carry overflowing seconds into minutes",
			input:    "00:00:90",
			expected: Duration{Minutes: 1, Seconds: 30},
		},
		{
			name:     "should carry overflowing minutes into hours",
			input:    "01:75:61",
			expected: Duration{Hours: 2, Minutes: 16, Seconds: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.input))
		})
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected string
	}{
		{
			name:     "should carry seconds into minutes",
			a:        "00:00:45",
			b:        "00:00:30",
			expected: "00:01:15",
		},
		{
			name:     "should carry minutes into hours",
			a:        "00:45:00",
			b:        "00:30:00",
			expected: "01:15:00",
		},
		{
			name:     "should carry seconds through minutes into hours",
			a:        "00:59:59",
			b:        "00:00:01",
			expected: "01:00:00",
		},
		{
			name:     "should treat zero as the identity",
			a:        "03:12:45",
			b:        "00:00:00",
			expected: "03:12:45",
		},
		{
			name:     "should add zero durations to zero",
			a:        "",
			b:        "",
			expected: "00:00:00",
		},
		{
			name:     "should not bound hours",
			a:        "99:30:00",
			b:        "02:45:00",
			expected: "102:15:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(Add(Parse(tt.a), Parse(tt.b))))
		})
	}
}

func TestAdd_Commutative(t *testing.T) {
	pairs := [][2]string{
		{"00:00:45", "00:00:30"},
		{"12:59:59", "00:00:01"},
		{"01:30:00", "02:45:15"},
	}

	for _, pair := range pairs {
		a, b := Parse(pair[0]), Parse(pair[1])
		assert.Equal(t, Format(Add(a, b)), Format(Add(b, a)))
	}
}

func TestAdd_Associative(t *testing.T) {
	a := Parse("00:40:50")
	b := Parse("01:30:20")
	c := Parse("00:00:55")

	left := Add(Add(a, b), c)
	right := Add(a, Add(b, c))

	assert.Equal(t, Format(left), Format(right))
}

func TestFormat_RoundTrip(t *testing.T) {
	canonical := []string{"00:00:00", "01:30:00", "23:59:59", "120:00:01"}

	for _, s := range canonical {
		assert.Equal(t, s, Format(Parse(s)))
	}
}

func TestSum(t *testing.T) {
	t.Run("should return zero for no durations", func(t *testing.T) {
		assert.Equal(t, "00:00:00", Format(Sum()))
	})

	t.Run("should sum a mix of durations", func(t *testing.T) {
		total := Sum(Parse("00:30:00"), Parse("00:45:30"), Parse("00:00:45"))
		assert.Equal(t, "01:16:15", Format(total))
	})
}

func TestBetween(t *testing.T) {
	start := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		end      time.Time
		expected string
	}{
		{
			name:     "should derive the span between two timestamps",
			end:      start.Add(2*time.Hour + 15*time.Minute + 30*time.Second),
			expected: "02:15:30",
		},
		{
			name:     "should collapse a negative span to zero",
			end:      start.Add(-time.Hour),
			expected: "00:00:00",
		},
		{
			name:     "should span more than a day without wrapping hours",
			end:      start.Add(30 * time.Hour),
			expected: "30:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(Between(start, tt.end)))
		})
	}
}

func TestFromElapsed(t *testing.T) {
	assert.Equal(t, "00:00:05", Format(FromElapsed(5000*time.Millisecond)))
	assert.Equal(t, "00:00:00", Format(FromElapsed(-time.Second)))
	assert.Equal(t, "01:00:00", Format(FromElapsed(time.Hour)))
}

func TestElapsed(t *testing.T) {
	d := Parse("01:30:45")
	assert.Equal(t, time.Hour+30*time.Minute+45*time.Second, d.Elapsed())
}

func TestHumanString(t *testing.T) {
	assert.Equal(t, "00h 00m 00s", HumanString(Zero))
	assert.Equal(t, "01h 05m 09s", HumanString(Parse("01:05:09")))
	assert.Equal(t, "120h 00m 30s", HumanString(Parse("120:00:30")))
}
