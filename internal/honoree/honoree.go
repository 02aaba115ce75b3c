// Package honoree reads the person being celebrated from a vCard and
// computes their next birthday.
package honoree

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-celebration/internal/config"
)

// Honoree is the person being celebrated.
type Honoree struct {
	// Name is the display name (Formatted Name or Structured Name).
	Name string

	// DateOfBirth is the parsed BDAY value. Zero when the card has none.
	DateOfBirth time.Time

	// YearKnown indicates if the vCard contained a year or just --MM-DD.
	YearKnown bool
}

// HasBirthday reports whether the card carried a usable BDAY.
func (h Honoree) HasBirthday() bool {
	return !h.DateOfBirth.IsZero()
}

// LoadCard opens and parses a .vcf file.
func LoadCard(path string) (Honoree, error) {
	f, err := os.Open(path)
	if err != nil {
		return Honoree{}, fmt.Errorf("%s: %w", config.ErrCardOpen, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return Honoree{}, fmt.Errorf("%s: %w", config.ErrCardOpen, err)
	}
	if !info.Mode().IsRegular() {
		return Honoree{}, fmt.Errorf("%s: %s", config.ErrCardNotFile, path)
	}

	return ParseCard(f)
}

// ParseCard returns the first contact of the stream. Malformed cards are
// skipped, but MaxCardDecodeErrors consecutive failures abort the parse so a
// reader that keeps failing cannot spin forever. A card with a name but no
// birthday is still accepted.
func ParseCard(r io.Reader) (Honoree, error) {
	decoder := vcard.NewDecoder(r)

	failures := 0
	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			return Honoree{}, errors.New(config.ErrCardEmpty)
		}
		if err != nil {
			failures++
			if failures >= config.MaxCardDecodeErrors {
				return Honoree{}, fmt.Errorf("%s: %w", config.ErrCardParse, err)
			}
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompHonoree,
				config.LogKeyError, err)
			continue
		}

		// Name Strategy: FN (Formatted) > N (Structured) > Fallback
		h := Honoree{Name: config.FallbackName}
		if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
			h.Name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil && n.Value != "" {
			h.Name = n.Value
		}

		if bday := card.Get(config.VCardBDAY); bday != nil && bday.Value != "" {
			if dob, yearKnown, err := parseDate(bday.Value); err == nil {
				h.DateOfBirth = dob
				h.YearKnown = yearKnown
			}
		}
		return h, nil
	}
}

// NextOccurrence returns the next birthday on or after the day of now, and
// the age reached on it (0 when the birth year is unknown).
func (h Honoree) NextOccurrence(now time.Time) (time.Time, int) {
	loc := now.Location()
	currentYear := now.Year()

	// time.Date normalizes Feb 29 to March 1st if currentYear is not a leap year.
	candidate := time.Date(currentYear, h.DateOfBirth.Month(), h.DateOfBirth.Day(), 0, 0, 0, 0, loc)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	if candidate.Before(todayStart) {
		candidate = time.Date(currentYear+1, h.DateOfBirth.Month(), h.DateOfBirth.Day(), 0, 0, 0, 0, loc)
	}

	age := 0
	if h.YearKnown {
		age = candidate.Year() - h.DateOfBirth.Year()
	}
	return candidate, age
}

// IsToday reports whether the birthday falls on the day of now.
func (h Honoree) IsToday(now time.Time) bool {
	if !h.HasBirthday() {
		return false
	}
	next, _ := h.NextOccurrence(now)
	y, m, d := now.Date()
	ny, nm, nd := next.Date()
	return y == ny && m == nm && d == nd
}

// parseDate handles the vCard date formats.
func parseDate(value string) (time.Time, bool, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, true, nil
		}
	}

	// Truncated dates carry no year; anchor them on a leap year so --02-29 survives.
	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			return time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), false, nil
		}
	}

	return time.Time{}, false, errors.New(config.ErrDateParse)
}
