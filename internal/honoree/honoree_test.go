package honoree

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-celebration/internal/config"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		name      string
		card      string
		wantName  string
		wantBday  bool
		yearKnown bool
	}{
		{
			name:      "Formatted name and full date",
			card:      "BEGIN:VCARD\nVERSION:4.0\nFN:Jane Doe\nBDAY:1990-12-31\nEND:VCARD\n",
			wantName:  "Jane Doe",
			wantBday:  true,
			yearKnown: true,
		},
		{
			name:      "Structured name and truncated date",
			card:      "BEGIN:VCARD\nVERSION:3.0\nN:Doe;John;;;\nBDAY:--0229\nEND:VCARD\n",
			wantName:  "Doe;John;;;",
			wantBday:  true,
			yearKnown: false,
		},
		{
			name:     "No birthday",
			card:     "BEGIN:VCARD\nVERSION:3.0\nFN:Nobody\nEND:VCARD\n",
			wantName: "Nobody",
		},
		{
			name:     "Unparseable birthday",
			card:     "BEGIN:VCARD\nVERSION:3.0\nFN:Odd\nBDAY:someday\nEND:VCARD\n",
			wantName: "Odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := ParseCard(strings.NewReader(tt.card))
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, h.Name)
			assert.Equal(t, tt.wantBday, h.HasBirthday())
			assert.Equal(t, tt.yearKnown, h.YearKnown)
		})
	}
}

func TestParseCard_TruncatedLeapDay(t *testing.T) {
	h, err := ParseCard(strings.NewReader("BEGIN:VCARD\nVERSION:3.0\nFN:Leap\nBDAY:--02-29\nEND:VCARD\n"))
	require.NoError(t, err)

	assert.Equal(t, time.Date(config.DefaultLeapYear, 2, 29, 0, 0, 0, 0, time.UTC), h.DateOfBirth)
}

func TestParseCard_Empty(t *testing.T) {
	_, err := ParseCard(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrCardEmpty)
}

func TestLoadCard(t *testing.T) {
	p := filepath.Join(t.TempDir(), "honoree.vcf")
	require.NoError(t, os.WriteFile(p, []byte("BEGIN:VCARD\nVERSION:4.0\nFN:File Person\nBDAY:20000101\nEND:VCARD\n"), config.FilePermUserRW))

	h, err := LoadCard(p)
	require.NoError(t, err)
	assert.Equal(t, "File Person", h.Name)
	assert.True(t, h.YearKnown)

	_, err = LoadCard(filepath.Join(t.TempDir(), "missing.vcf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrCardOpen)
}

func TestLoadCard_Directory(t *testing.T) {
	done := make(chan error, 1)
	go func() {
		_, err := LoadCard(t.TempDir())
		done <- err
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), config.ErrCardNotFile)
	case <-time.After(2 * time.Second):
		t.Fatal("LoadCard on a directory must return promptly")
	}
}

func TestParseCard_ReadError(t *testing.T) {
	boom := errors.New("disk on fire")

	done := make(chan error, 1)
	go func() {
		_, err := ParseCard(iotest.ErrReader(boom))
		done <- err
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), config.ErrCardParse)
	case <-time.After(2 * time.Second):
		t.Fatal("ParseCard must give up on a reader that keeps failing")
	}
}

func TestParseCard_ReadErrorMidStream(t *testing.T) {
	partial := strings.NewReader("BEGIN:VCARD\nVERSION:4.0\nFN:Half")
	r := io.MultiReader(partial, iotest.ErrReader(errors.New("connection reset")))

	_, err := ParseCard(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrCardParse)
}

// TestNextOccurrence covers standard dates, the end of year and leap years.
func TestNextOccurrence(t *testing.T) {
	// Reference "Now": June 15th, 2025 (Non-Leap Year)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		birthDate    time.Time
		yearKnown    bool
		expectedDate time.Time
		expectedAge  int
	}{
		{
			name:         "Birthday already passed this year",
			birthDate:    time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			yearKnown:    true,
			expectedDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			expectedAge:  36,
		},
		{
			name:         "Birthday later this year",
			birthDate:    time.Date(1990, 12, 31, 0, 0, 0, 0, time.UTC),
			yearKnown:    true,
			expectedDate: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			expectedAge:  35,
		},
		{
			name:         "Birthday is today",
			birthDate:    time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
			yearKnown:    true,
			expectedDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			expectedAge:  35,
		},
		{
			name:         "Year unknown",
			birthDate:    time.Date(config.DefaultLeapYear, 1, 1, 0, 0, 0, 0, time.UTC),
			yearKnown:    false,
			expectedDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			expectedAge:  0,
		},
		{
			name:         "Leapling in a non-leap year",
			birthDate:    time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC),
			yearKnown:    true,
			expectedDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			expectedAge:  26,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Honoree{Name: "X", DateOfBirth: tt.birthDate, YearKnown: tt.yearKnown}
			next, age := h.NextOccurrence(now)
			assert.Equal(t, tt.expectedDate, next)
			assert.Equal(t, tt.expectedAge, age)
		})
	}
}

func TestNextOccurrence_LeapYearContext(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := Honoree{DateOfBirth: time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC), YearKnown: true}

	next, _ := h.NextOccurrence(now)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), next, "In a leap year, the birthday should be Feb 29")
}

func TestIsToday(t *testing.T) {
	h := Honoree{DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), YearKnown: true}

	assert.True(t, h.IsToday(time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC)))
	assert.False(t, h.IsToday(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)))
	assert.False(t, Honoree{Name: "No date"}.IsToday(time.Now()))
}

func TestWriteCalendar(t *testing.T) {
	h := Honoree{Name: "Jane Doe", DateOfBirth: time.Date(1990, 12, 31, 0, 0, 0, 0, time.UTC), YearKnown: true}
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, h.WriteCalendar(&buf, now, "Birthday: Jane Doe"))

	ics := buf.String()
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "BEGIN:VEVENT")
	assert.Contains(t, ics, "SUMMARY:Birthday: Jane Doe")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20251231")
	assert.Contains(t, ics, "RRULE:FREQ=YEARLY")
	assert.Contains(t, ics, "@"+config.ICalDomain)

	// The UID is stable across exports.
	var again bytes.Buffer
	require.NoError(t, h.WriteCalendar(&again, now, "Birthday: Jane Doe"))
	assert.Equal(t, ics, again.String())
}

func TestWriteCalendar_NoBirthday(t *testing.T) {
	err := Honoree{Name: "Nobody"}.WriteCalendar(&bytes.Buffer{}, time.Now(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrNoBirthday)
}
