package timestamp

import (
	"time"

	"golang.org/x/text/language"
)

// Display layouts keyed by the locales the leaderboard can render. The
// first entry is the fallback for unmatched tags.
var (
	displayTags = []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
		language.Japanese,
	}
	displayLayouts = []string{
		"1/2/2006, 3:04:05 PM",
		"02/01/2006, 15:04:05",
		"2.1.2006, 15:04:05",
		"02/01/2006 15:04:05",
		"2006/1/2 15:04:05",
	}
	displayMatcher = language.NewMatcher(displayTags)
)

// Formatter renders stored epoch seconds for people. It must use the same
// zone the Normalizer parsed with for round trips to show the submitted
// wall-clock time.
type Formatter struct {
	loc    *time.Location
	layout string
}

func NewFormatter(loc *time.Location, locale language.Tag) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	_, idx, _ := displayMatcher.Match(locale)
	return &Formatter{loc: loc, layout: displayLayouts[idx]}
}

func (f *Formatter) Format(epochSeconds int64) string {
	return time.Unix(epochSeconds, 0).In(f.loc).Format(f.layout)
}

func (f *Formatter) Layout() string {
	return f.layout
}
