// Package dateparse converts loosely formatted date text into calendar dates.
//
// Parsing is a fallback chain and the first match wins:
//
//  1. the default lenient layouts (ISO dates and date-times, RFC layouts, slash dates);
//  2. the explicit layouts in priority order, on the whole value;
//  3. both of the above again on the first 10 characters, which drops a trailing time of day.
//
// Two-digit years fall in the 1950-2049 window.
package dateparse

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jinzhu/now"

	"github.com/UnknownOlympus/mnemosyne/internal/models"
)

// ErrUnrecognizedDate is returned when no layout matches the input.
var ErrUnrecognizedDate = errors.New("unrecognized date")

// Stage identifies which step of the chain produced a result.
type Stage string

const (
	StageDefault   Stage = "default"
	StageExplicit  Stage = "explicit"
	StageTruncated Stage = "truncated"
)

const (
	truncateLength = 10
	lastShortYear  = 2049
)

// Format pairs the documented pattern with its Go layout.
type Format struct {
	Pattern string
	Layout  string
	// Clock layouts carry an am/pm marker, which Go only matches in upper case.
	Clock bool
	// ShortYear layouts read a two-digit year.
	ShortYear bool
}

// Formats is the explicit layout chain in priority order.
var Formats = []Format{
	{Pattern: "MM/dd/yyyy", Layout: "01/02/2006"},
	{Pattern: "dd/MM/yyyy", Layout: "02/01/2006"},
	{Pattern: "yyyy/MM/dd", Layout: "2006/01/02"},
	{Pattern: "yyyy/dd/MM", Layout: "2006/02/01"},
	{Pattern: "dd MMMM yyyy", Layout: "02 January 2006"},
	{Pattern: "dd MMM yyyy", Layout: "02 Jan 2006"},
	{Pattern: "dd MMMM yy", Layout: "02 January 06", ShortYear: true},
	{Pattern: "dd MMM yy", Layout: "02 Jan 06", ShortYear: true},
	{Pattern: "dd/MM/yyyy hh:mm am/pm", Layout: "02/01/2006 03:04 PM", Clock: true},
	{Pattern: "yyyy/MM/dd hh:mm am/pm", Layout: "2006/01/02 03:04 PM", Clock: true},
}

// defaultLayouts extend the jinzhu/now set with the slash, month-name, 12-hour and zone-less
// forms clients send most.
var defaultLayouts = append([]string{
	"2006-1-2",
	"2006-1-2 3:4 PM",
	"2006-1-2 3:4:5 PM",
	"2006/1/2",
	"2006/1/2 15:4:5",
	"2006/1/2 3:4 PM",
	"1/2/2006",
	"1/2/2006 15:4:5",
	"1/2/2006 3:4 PM",
	"1/2/2006 3:4:5 PM",
	"January 2, 2006",
	"Jan 2, 2006",
	"Monday, January 2, 2006",
	"Mon, Jan 2, 2006",
	"January 2, 2006 3:4 PM",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
}, now.TimeFormats...)

// The default stage fills missing parts from the current time, so it only runs for values
// carrying a full year. A bare "12:30" or "1990" must not turn into a date.
var (
	fullYear   = regexp.MustCompile(`\d{4}`)
	bareNumber = regexp.MustCompile(`^\d+$`)
)

// Result is a parsed date together with the step that matched.
type Result struct {
	Date    models.Date
	Stage   Stage
	Pattern string
}

// Parse runs the fallback chain on value.
func Parse(value string) (Result, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Result{}, fmt.Errorf("%w: empty value; %s", ErrUnrecognizedDate, supported())
	}

	if result, ok := parseChain(trimmed); ok {
		return result, nil
	}

	if len(trimmed) > truncateLength {
		if result, ok := parseChain(trimmed[:truncateLength]); ok {
			result.Stage = StageTruncated
			return result, nil
		}
	}

	return Result{}, fmt.Errorf("%w %q; %s", ErrUnrecognizedDate, value, supported())
}

// ParseOptional treats nil and blank text as "no date".
func ParseOptional(value *string) (Result, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return Result{}, nil
	}
	return Parse(*value)
}

// SupportedFormats lists the accepted patterns in priority order.
func SupportedFormats() []string {
	patterns := make([]string, 0, len(Formats)+1)
	patterns = append(patterns, "default (ISO 8601, RFC 3339, yyyy/M/d, M/d/yyyy, MMMM d, yyyy, 12-hour clock)")
	for _, format := range Formats {
		patterns = append(patterns, format.Pattern)
	}
	return patterns
}

func supported() string {
	return "supported formats: " + strings.Join(SupportedFormats(), ", ")
}

func parseChain(value string) (Result, bool) {
	if parsed, ok := parseDefault(value); ok {
		return Result{Date: models.DateOf(parsed), Stage: StageDefault, Pattern: "default"}, true
	}

	if parsed, format, ok := parseExplicit(value); ok {
		return Result{Date: models.DateOf(parsed), Stage: StageExplicit, Pattern: format.Pattern}, true
	}

	return Result{}, false
}

func parseDefault(value string) (time.Time, bool) {
	if !fullYear.MatchString(value) || bareNumber.MatchString(value) {
		return time.Time{}, false
	}

	cfg := &now.Config{
		WeekStartDay: time.Monday,
		TimeLocation: time.UTC,
		TimeFormats:  defaultLayouts,
	}
	parsed, err := cfg.Parse(value)
	if err != nil {
		return time.Time{}, false
	}

	return parsed, true
}

func parseExplicit(value string) (time.Time, Format, bool) {
	for _, format := range Formats {
		input := value
		if format.Clock {
			input = strings.ToUpper(value)
		}

		parsed, err := time.ParseInLocation(format.Layout, input, time.UTC)
		if err != nil {
			continue
		}
		if format.ShortYear && parsed.Year() > lastShortYear {
			parsed = parsed.AddDate(-100, 0, 0)
		}
		return parsed, format, true
	}

	return time.Time{}, Format{}, false
}
