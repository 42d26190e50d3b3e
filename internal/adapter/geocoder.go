package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/riegum-client/internal/config"
	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/internal/utils"
	"github.com/MKhiriev/riegum-client/models"
)

const geocodePath = "/maps/api/geocode/json"

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type googleGeocoder struct {
	client *utils.HTTPClient
	apiKey string
	logger *logger.Logger
}

// NewGoogleGeocoder builds a [Geocoder] backed by the Google Geocoding API.
// Without an API key every lookup fails with [ErrGeocodingDisabled].
func NewGoogleGeocoder(adapterCfg config.ClientAdapter, logger *logger.Logger) Geocoder {
	client := utils.NewHTTPClient()
	client.
		SetBaseURL(adapterCfg.GeocodingAddress).
		SetTimeout(adapterCfg.RequestTimeout).
		SetLogger(logger)

	return &googleGeocoder{client: client, apiKey: adapterCfg.GeocodingAPIKey, logger: logger}
}

// Geocode implements [Geocoder]. The first result wins, as in the web client.
func (g *googleGeocoder) Geocode(ctx context.Context, address string) (models.GeocodeResult, error) {
	if g.apiKey == "" {
		return models.GeocodeResult{}, ErrGeocodingDisabled
	}

	var out geocodeResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"address": address, "key": g.apiKey}).
		SetResult(&out).
		Get(geocodePath)
	if err != nil {
		return models.GeocodeResult{}, fmt.Errorf("geocode request: %w", err)
	}
	if resp.IsError() {
		return models.GeocodeResult{}, fmt.Errorf("%w: http %d", ErrGeocodingFailed, resp.StatusCode())
	}

	switch out.Status {
	case "OK":
	case "ZERO_RESULTS":
		return models.GeocodeResult{}, fmt.Errorf("%w: %q", ErrLocationNotFound, address)
	default:
		g.logger.Warn().Str("status", out.Status).Str("message", out.ErrorMessage).Msg("geocoding rejected")
		return models.GeocodeResult{}, fmt.Errorf("%w: %s %s", ErrGeocodingFailed, out.Status, out.ErrorMessage)
	}
	if len(out.Results) == 0 {
		return models.GeocodeResult{}, fmt.Errorf("%w: %q", ErrLocationNotFound, address)
	}

	first := out.Results[0]
	return models.GeocodeResult{
		FormattedAddress: first.FormattedAddress,
		Latitude:         first.Geometry.Location.Lat,
		Longitude:        first.Geometry.Location.Lng,
	}, nil
}
