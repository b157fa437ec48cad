// Package timezone pins every wall clock reading to the configured APP_TIMEZONE.
// Event dates are stored as plain dates; slots are wall clock offsets from midnight of that date in this zone.
package timezone

import (
	"sync"
	"time"

	"careerday/config"

	"github.com/rs/zerolog/log"
)

var (
	once        sync.Once
	appLocation *time.Location
)

func location() *time.Location {
	once.Do(func() {
		appLocation = Load(config.Get().App.Timezone)

		log.Info().Str("location", appLocation.String()).Msg("Application timezone initialized")
	})

	return appLocation
}

// Load resolves an IANA zone name, falling back to UTC when it is empty or unknown.
func Load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	return loc
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(location())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(location())
}

func GetLocation() *time.Location {
	return location()
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, location())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Midnight keeps the calendar date of t and moves it to 00:00 in loc.
// DATE columns scan as UTC midnight, so their date must not be shifted by a zone conversion first.
func Midnight(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
