// Package presentation maps a weather snapshot to the presentation key
// the renderer uses to pick a background.
package presentation

import (
	"strings"

	"github.com/i474232898/weather-dashboard/internal/common"
	"github.com/i474232898/weather-dashboard/internal/weatherapi"
)

// Key names a background asset.
type Key string

const (
	KeySunny        Key = "sunny"
	KeyNight        Key = "night"
	KeyRainy        Key = "rainy"
	KeyPartlyCloudy Key = "partly-cloudy"
	KeyFog          Key = "fog"
	KeySnowy        Key = "snowy"
	KeyStormy       Key = "stormy"
)

// Select picks the presentation key for a snapshot. The rules run in a
// fixed order and the first match wins: night overrides every
// condition-based rule, and condition matching is case-insensitive
// substring matching on the upstream's free-text description. The
// ordering is deliberate; "Patchy light rain with thunder" is rainy,
// not stormy.
func Select(snapshot *weatherapi.Snapshot) Key {
	if snapshot == nil {
		return KeySunny
	}
	if snapshot.Current.IsDay == 0 {
		return KeyNight
	}

	text := strings.ToLower(snapshot.Current.Condition.Text)
	switch {
	case common.HasAny(text, "rain", "drizzle"):
		return KeyRainy
	case common.HasAny(text, "cloud", "overcast"):
		return KeyPartlyCloudy
	case common.HasAny(text, "fog", "mist"):
		return KeyFog
	case common.HasAny(text, "snow"):
		return KeySnowy
	case common.HasAny(text, "thunder", "storm"):
		return KeyStormy
	default:
		return KeySunny
	}
}
