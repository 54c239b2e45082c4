package datacraft

import (
	"math"
	"time"

	"github.com/rrgmc/datacraft/internal/datefmt"
)

const secondsInDay = 24 * 60 * 60

const (
	isoLayout       LayoutDateFormat = "2006-01-02T15:04:05"
	isoMillisLayout LayoutDateFormat = "2006-01-02T15:04:05.000"
	isoMicrosLayout LayoutDateFormat = "2006-01-02T15:04:05.000000"
)

// DateFormat formats generated dates.
type DateFormat interface {
	Format(t time.Time) string
}

// LayoutDateFormat formats dates with a Go time layout.
type LayoutDateFormat string

func (l LayoutDateFormat) Format(t time.Time) string {
	return t.Format(string(l))
}

// DateSupplierData formats a random epoch timestamp drawn from a distribution.
type DateSupplierData struct {
	Distribution Distribution
	Format       DateFormat
	Location     *time.Location
	Hours        ValueSupplier
}

var _ ValueSupplier = (*DateSupplierData)(nil)

func (s *DateSupplierData) Next(iteration int64) (any, error) {
	t := epochToTime(s.Distribution.NextValue(), s.Location)
	if s.Hours != nil {
		hv, err := s.Hours.Next(iteration)
		if err != nil {
			return nil, err
		}
		hour, ok := toInt(hv)
		if !ok || hour < 0 || hour > 23 {
			return nil, NewSpecErrorf("invalid hour value '%v'", hv)
		}
		t = time.Date(t.Year(), t.Month(), t.Day(), hour, t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	}
	return s.Format.Format(t), nil
}

// EpochDateSupplierData returns a random epoch timestamp drawn from a distribution, in seconds or milliseconds.
type EpochDateSupplierData struct {
	Distribution Distribution
	Millis       bool
}

var _ ValueSupplier = (*EpochDateSupplierData)(nil)

func (s *EpochDateSupplierData) Next(iteration int64) (any, error) {
	v := s.Distribution.NextValue()
	if s.Millis {
		return int64(math.Floor(v * 1000)), nil
	}
	return int64(math.Floor(v)), nil
}

func epochToTime(v float64, loc *time.Location) time.Time {
	sec, frac := math.Modf(v)
	if frac < 0 {
		sec--
		frac++
	}
	return time.Unix(int64(sec), int64(frac*1e9)).In(loc)
}

// datePattern compiles the "format" config, or the default date format.
func datePattern(config map[string]any, loader *Loader) (*datefmt.Pattern, error) {
	format := configString(config, "format", toString(loader.Default("date_format")))
	pattern, err := datefmt.Compile(format)
	if err != nil {
		return nil, NewSpecErrorf("invalid date format '%s': %w", format, err)
	}
	return pattern, nil
}

// dateDistribution builds the timestamp distribution from the date config. When "center_date" or
// "stddev_days" is set the distribution is normal, otherwise it is uniform between start and end.
func dateDistribution(config map[string]any, loader *Loader) (Distribution, error) {
	pattern, err := datePattern(config, loader)
	if err != nil {
		return nil, err
	}

	parseDate := func(key string) (time.Time, bool, error) {
		v, ok := config[key]
		if !ok || v == nil {
			return time.Time{}, false, nil
		}
		t, err := pattern.Parse(toString(v), loader.Location())
		if err != nil {
			return time.Time{}, false, NewSpecErrorf("date format string '%s' does not match %s date '%v': %w",
				pattern, key, v, err)
		}
		return t, true, nil
	}

	_, hasCenter := config["center_date"]
	_, hasStddev := config["stddev_days"]
	if hasCenter || hasStddev {
		center, ok, err := parseDate("center_date")
		if err != nil {
			return nil, err
		}
		if !ok {
			center = loader.Now()
		}
		defaultStddev, _ := toFloat(loader.Default("date_stddev_days"))
		stddevDays, err := configFloat(config, "stddev_days", defaultStddev)
		if err != nil {
			return nil, err
		}
		if stddevDays < 0 {
			return nil, NewSpecErrorf("stddev_days must not be negative: %v", stddevDays)
		}
		return NewNormalDistribution(loader.Rand(), float64(center.Unix()), stddevDays*secondsInDay), nil
	}

	defaultDuration, _ := toInt(loader.Default("date_duration_days"))
	durationDays, err := configInt(config, "duration_days", defaultDuration)
	if err != nil {
		return nil, err
	}
	defaultOffset, _ := toInt(loader.Default("date_offset_days"))
	offsetDays, err := configInt(config, "offset", defaultOffset)
	if err != nil {
		return nil, err
	}
	offset := time.Duration(offsetDays) * secondsInDay * time.Second

	start, ok, err := parseDate("start")
	if err != nil {
		return nil, err
	}
	if !ok {
		start = loader.Now()
	}
	start = start.Add(-offset)

	end, ok, err := parseDate("end")
	if err != nil {
		return nil, err
	}
	if ok {
		end = end.AddDate(0, 0, 1).Add(-offset)
	} else {
		end = start.AddDate(0, 0, durationDays)
	}
	if end.Before(start) {
		return nil, NewSpecErrorf("end date (%s) is before start date (%s)", end, start)
	}
	return NewUniformDistribution(loader.Rand(), float64(start.Unix()), float64(end.Unix())), nil
}
