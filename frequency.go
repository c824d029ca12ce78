package rrule

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/spf13/cast"
)

// Frequency defines the base factor for how often recurrences happen. The
// full RFC 5545 enumeration is kept here for parity with the wire encoding,
// but Parse only ever produces the four frequencies this engine supports:
// Daily, Weekly, Monthly and Yearly. Secondly, Minutely and Hourly are
// rejected by parseFreq; see doc.go for the rationale.
type Frequency int

// Frequencies specified in RFC 5545.
const (
	Secondly Frequency = iota
	Minutely
	Hourly
	Daily
	Weekly
	Monthly
	Yearly
)

// String returns the RFC 5545 string for each of the seven constants above
// (sub-daily ones included), and panics for any other value.
func (f Frequency) String() string {
	switch f {
	case Secondly:
		return "SECONDLY"
	case Minutely:
		return "MINUTELY"
	case Hourly:
		return "HOURLY"
	case Daily:
		return "DAILY"
	case Weekly:
		return "WEEKLY"
	case Monthly:
		return "MONTHLY"
	case Yearly:
		return "YEARLY"
	}
	log.Panicf("%d is not a supported frequency constant", f)
	return ""
}

// supported reports whether f is one of the four frequencies this engine
// can enumerate.
func (f Frequency) supported() bool {
	switch f {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// MarshalJSON encodes f using its RFC 5545 string form.
func (f Frequency) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON accepts either the RFC 5545 string form or a bare integer,
// using cast to normalize whichever numeric representation
// json.Unmarshal handed back to us.
func (f *Frequency) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case int, int32, float64, float32, int64:
		*f = Frequency(cast.ToInt(value))
		return nil
	case string:
		if parsed, err := parseFreq(value); err == nil {
			*f = parsed
			return nil
		}
		i, err := cast.ToIntE(value)
		if err != nil {
			return err
		}
		*f = Frequency(i)
		return nil
	default:
		return errors.New("invalid frequency")
	}
}
