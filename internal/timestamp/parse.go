// Package timestamp converts client wall-clock text into epoch seconds and
// back into display strings.
package timestamp

import (
	"fmt"
	"strconv"
	"time"

	"highscore-server/internal/domain"
)

const componentCount = 6

// Normalizer interprets submitted timestamps in one fixed zone.
type Normalizer struct {
	loc *time.Location
}

func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{loc: loc}
}

func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// Parse reads "day/month/year hour:minute:second". Any of '/', ':' and ' '
// may separate components; there must be exactly six and each must be an
// integer. Out-of-range values roll over the way calendar arithmetic does.
func (n *Normalizer) Parse(text string) (time.Time, error) {
	parts := split(text)
	if len(parts) != componentCount {
		return time.Time{}, domain.Format("Invalid timestamp format", fmt.Errorf("expected %d components in %q", componentCount, text))
	}

	var v [componentCount]int
	for i, p := range parts {
		num, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, domain.Format("Invalid timestamp format", err)
		}
		v[i] = num
	}

	day, month, year := v[0], v[1], v[2]
	hour, minute, second := v[3], v[4], v[5]
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, n.loc), nil
}

// EpochSeconds parses text and truncates to whole seconds since the epoch.
func (n *Normalizer) EpochSeconds(text string) (int64, error) {
	t, err := n.Parse(text)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// split cuts on every delimiter and keeps empty components, so "15//06"
// yields an empty part that fails to parse.
func split(text string) []string {
	var parts []string
	start := 0
	for i, r := range text {
		if r == '/' || r == ':' || r == ' ' {
			parts = append(parts, text[start:i])
			start = i + 1
		}
	}
	return append(parts, text[start:])
}
