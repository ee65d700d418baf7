package geo

import (
	"context"

	"github.com/kelvins/geocoder"
)

// GeocoderSource is a Source backed by the Google Geocoding API. It
// serves deployments with no device position feed: the operator
// configures the city the process runs in and the source resolves it
// to coordinates once per request.
type GeocoderSource struct {
	apiKey  string
	city    string
	country string
}

// NewGeocoderSource creates a GeocoderSource. An empty API key makes
// every resolution fail with CodePermissionDenied, mirroring a denied
// platform permission.
func NewGeocoderSource(apiKey, city, country string) *GeocoderSource {
	return &GeocoderSource{apiKey: apiKey, city: city, country: country}
}

func (s *GeocoderSource) CurrentPosition(ctx context.Context, _ Options) (Coordinates, error) {
	if s.apiKey == "" {
		return Coordinates{}, &Error{Code: CodePermissionDenied}
	}
	if s.city == "" {
		return Coordinates{}, &Error{Code: CodePositionUnavailable}
	}

	type result struct {
		loc geocoder.Location
		err error
	}
	ch := make(chan result, 1)

	// The geocoder library has no context support; run it aside and
	// honor the deadline ourselves.
	go func() {
		geocoder.ApiKey = s.apiKey
		loc, err := geocoder.Geocoding(geocoder.Address{
			City:    s.city,
			Country: s.country,
		})
		ch <- result{loc: loc, err: err}
	}()

	select {
	case <-ctx.Done():
		return Coordinates{}, &Error{Code: CodeTimeout}
	case r := <-ch:
		if r.err != nil {
			return Coordinates{}, &Error{Code: CodePositionUnavailable}
		}
		return Coordinates{Latitude: r.loc.Latitude, Longitude: r.loc.Longitude}, nil
	}
}
