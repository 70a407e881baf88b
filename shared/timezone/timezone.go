package timezone

import (
	"haven/config"
	"time"

	"github.com/rs/zerolog/log"
)

const fallbackZone = "UTC"

var appLocation = time.UTC

func init() {
	SetLocation(config.Get().App.Timezone)
}

// SetLocation switches the application zone. Empty or unknown names select UTC.
func SetLocation(name string) {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC")

		appLocation = time.UTC

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Str("fallback", fallbackZone).Msg("Failed to load timezone")

		appLocation = time.UTC

		return
	}

	appLocation = loc

	log.Debug().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

func Now() time.Time {
	return time.Now().In(appLocation)
}

func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

func GetLocation() *time.Location {
	return appLocation
}

// Parse reads value as wall-clock time in the application zone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, appLocation)
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
