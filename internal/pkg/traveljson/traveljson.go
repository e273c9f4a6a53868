// Package traveljson implements the typed JSON envelope used by history
// exports. Values that plain JSON would flatten (timestamps, dates,
// wall-clock times, fixed-precision decimals) are wrapped in a
// {"content_type": ..., "value": ...} record so a decode yields the original
// value back.
package traveljson

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DateFormat     = "2006-01-02"
	ClockFormat    = "15:04:05"
	DateTimeFormat = "2006-01-02T15:04:05Z"
)

type envelope struct {
	ContentType string `json:"content_type"`
	Value       string `json:"value"`
}

func marshalEnvelope(contentType, value string) ([]byte, error) {
	return json.Marshal(envelope{ContentType: contentType, Value: value})
}

func unmarshalEnvelope(data []byte, contentType string) (string, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return "", err
	}
	if env.ContentType != contentType {
		return "", fmt.Errorf("expected content_type %q, got %q", contentType, env.ContentType)
	}
	return env.Value, nil
}

// DateTime marshals as a UTC second-precision timestamp envelope.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.UTC().Truncate(time.Second)}
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return marshalEnvelope("datetime", d.UTC().Format(DateTimeFormat))
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	value, err := unmarshalEnvelope(data, "datetime")
	if err != nil {
		return err
	}
	t, err := time.ParseInLocation(DateTimeFormat, value, time.UTC)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Date marshals as a calendar-date envelope.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return marshalEnvelope("date", d.Format(DateFormat))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	value, err := unmarshalEnvelope(data, "date")
	if err != nil {
		return err
	}
	t, err := time.ParseInLocation(DateFormat, value, time.UTC)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Clock marshals as a wall-clock time envelope.
type Clock struct {
	time.Time
}

func NewClock(hour, minute, second int) Clock {
	return Clock{Time: time.Date(0, time.January, 1, hour, minute, second, 0, time.UTC)}
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return marshalEnvelope("time", c.Format(ClockFormat))
}

func (c *Clock) UnmarshalJSON(data []byte) error {
	value, err := unmarshalEnvelope(data, "time")
	if err != nil {
		return err
	}
	t, err := time.ParseInLocation(ClockFormat, value, time.UTC)
	if err != nil {
		return err
	}
	c.Time = t
	return nil
}

// Decimal marshals as a fixed-precision decimal envelope, preserving scale.
type Decimal struct {
	decimal.Decimal
}

func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return marshalEnvelope("decimal", d.String())
}

func (d *Decimal) UnmarshalJSON(data []byte) error {
	value, err := unmarshalEnvelope(data, "decimal")
	if err != nil {
		return err
	}
	dec, err := decimal.NewFromString(value)
	if err != nil {
		return err
	}
	d.Decimal = dec
	return nil
}
