package honoree

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-celebration/internal/config"
)

// WriteCalendar encodes a yearly all-day event for the next birthday.
// summary is the already localized event title.
func (h Honoree) WriteCalendar(w io.Writer, now time.Time, summary string) error {
	if !h.HasBirthday() {
		return errors.New(config.ErrNoBirthday)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	next, _ := h.NextOccurrence(now)

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, h.uid(), config.ICalDomain))
	event.Props.SetText(config.PropSummary, summary)

	stamp := ical.NewProp(config.PropDTStamp)
	stamp.SetDateTime(now.UTC())
	event.Props.Set(stamp)

	start := ical.NewProp(config.PropDTStart)
	start.SetDate(next)
	event.Props.Set(start)

	// Set the rule manually to avoid the "VALUE=TEXT" param.
	rrule := ical.NewProp(config.PropRRule)
	rrule.Value = config.ICalYearly
	event.Props.Set(rrule)

	cal.Children = append(cal.Children, event.Component)

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return nil
}

// uid is stable across exports for the same person.
func (h Honoree) uid() string {
	input := fmt.Sprintf(config.FormatHashInput, h.Name, h.DateOfBirth.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}
