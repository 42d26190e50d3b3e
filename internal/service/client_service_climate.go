package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/riegum-client/internal/adapter"
	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/internal/store"
	"github.com/MKhiriev/riegum-client/internal/validators"
	"github.com/MKhiriev/riegum-client/models"
)

// Preference names. Both are kept per display name and at most one of them
// is set at a time.
const (
	prefManualTemperature = "temperaturaManual"
	prefSavedClimate      = "climaGuardado"
)

const savedClimateType = "clima"

// savedClimate is the stored form of a fetched climate.
type savedClimate struct {
	Type          string  `json:"type"`
	Value         float64 `json:"value"`
	Precipitation float64 `json:"precipitacion"`
	Location      string  `json:"location"`
}

type clientClimateService struct {
	session     SessionManager
	adapter     adapter.RiegumAPI
	geocoder    adapter.Geocoder
	preferences store.PreferenceRepository
	validator   validators.Validator
	logger      *logger.Logger
}

func NewClientClimateService(
	sess SessionManager,
	api adapter.RiegumAPI,
	geocoder adapter.Geocoder,
	preferences store.PreferenceRepository,
	validator validators.Validator,
	logger *logger.Logger,
) ClientClimateService {
	return &clientClimateService{
		session:     sess,
		adapter:     api,
		geocoder:    geocoder,
		preferences: preferences,
		validator:   validator,
		logger:      logger,
	}
}

// owner is the display name preferences are kept under.
func (c *clientClimateService) owner() (string, error) {
	name := c.session.Session().DisplayName
	if name == "" {
		return "", ErrNotLoggedIn
	}
	return name, nil
}

func (c *clientClimateService) Preference(ctx context.Context) (models.ClimatePreference, error) {
	owner, err := c.owner()
	if err != nil {
		return models.ClimatePreference{}, err
	}

	var pref models.ClimatePreference

	raw, err := c.preferences.GetPreference(ctx, owner, prefManualTemperature)
	switch {
	case err == nil:
		t, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr == nil {
			pref.ManualTemperature = &t
			return pref, nil
		}
		c.logger.Warn().Err(parseErr).Msg("ignoring unreadable manual temperature")
	case !errors.Is(err, store.ErrPreferenceNotFound):
		return models.ClimatePreference{}, fmt.Errorf("read manual temperature: %w", err)
	}

	raw, err = c.preferences.GetPreference(ctx, owner, prefSavedClimate)
	switch {
	case err == nil:
		var saved savedClimate
		if parseErr := json.Unmarshal([]byte(raw), &saved); parseErr != nil || saved.Type != savedClimateType {
			c.logger.Warn().Err(parseErr).Msg("ignoring unreadable saved climate")
			return pref, nil
		}
		pref.SavedClimate = &models.Climate{
			MaxTemperature: saved.Value,
			Precipitation:  saved.Precipitation,
			Location:       saved.Location,
		}
	case !errors.Is(err, store.ErrPreferenceNotFound):
		return models.ClimatePreference{}, fmt.Errorf("read saved climate: %w", err)
	}

	return pref, nil
}

func (c *clientClimateService) SetManualTemperature(ctx context.Context, t float64) error {
	if !validators.ValidTemperature(t) {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrTemperatureOutOfRange)
	}

	owner, err := c.owner()
	if err != nil {
		return err
	}

	if err = c.preferences.SetPreference(ctx, owner, prefManualTemperature, strconv.FormatFloat(t, 'f', -1, 64)); err != nil {
		return fmt.Errorf("save manual temperature: %w", err)
	}
	if err = c.preferences.DeletePreference(ctx, owner, prefSavedClimate); err != nil {
		return fmt.Errorf("forget saved climate: %w", err)
	}
	return nil
}

func (c *clientClimateService) FetchClimate(ctx context.Context, location string) (models.Climate, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return models.Climate{}, ErrEmptyLocation
	}

	owner, err := c.owner()
	if err != nil {
		return models.Climate{}, err
	}

	climate, err := c.adapter.Weather(ctx, location)
	if err != nil {
		return models.Climate{}, mapAdapterError(err)
	}

	blob, err := json.Marshal(savedClimate{
		Type:          savedClimateType,
		Value:         climate.MaxTemperature,
		Precipitation: climate.Precipitation,
		Location:      climate.Location,
	})
	if err != nil {
		return models.Climate{}, fmt.Errorf("encode climate: %w", err)
	}

	if err = c.preferences.SetPreference(ctx, owner, prefSavedClimate, string(blob)); err != nil {
		return models.Climate{}, fmt.Errorf("save climate: %w", err)
	}
	if err = c.preferences.DeletePreference(ctx, owner, prefManualTemperature); err != nil {
		return models.Climate{}, fmt.Errorf("forget manual temperature: %w", err)
	}

	return climate, nil
}

func (c *clientClimateService) RecalculationTemperature(ctx context.Context) (float64, error) {
	pref, err := c.Preference(ctx)
	if err != nil {
		return 0, err
	}

	switch {
	case pref.ManualTemperature != nil:
		return *pref.ManualTemperature, nil
	case pref.SavedClimate != nil:
		return pref.SavedClimate.MaxTemperature, nil
	default:
		return 0, ErrNoClimateData
	}
}

func (c *clientClimateService) IndoorSettings(ctx context.Context) (models.IndoorSettings, error) {
	settings, err := c.adapter.GetIndoorSettings(ctx)
	if err != nil {
		return models.IndoorSettings{}, mapAdapterError(err)
	}
	return settings, nil
}

func (c *clientClimateService) UpdateIndoorSettings(ctx context.Context, s models.IndoorSettings) (models.IndoorSettings, error) {
	if err := c.validator.Validate(ctx, s); err != nil {
		return models.IndoorSettings{}, mapValidationError(err)
	}

	settings, err := c.adapter.UpdateIndoorSettings(ctx, s)
	if err != nil {
		return models.IndoorSettings{}, mapAdapterError(err)
	}
	return settings, nil
}

func (c *clientClimateService) OutdoorLocation(ctx context.Context) (models.OutdoorLocation, error) {
	loc, err := c.adapter.GetOutdoorLocation(ctx)
	if err != nil {
		return models.OutdoorLocation{}, mapAdapterError(err)
	}
	return loc, nil
}

func (c *clientClimateService) SetOutdoorLocation(ctx context.Context, place string) (models.OutdoorRecalculation, error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return models.OutdoorRecalculation{}, ErrEmptyLocation
	}

	geo, err := c.geocoder.Geocode(ctx, place)
	if err != nil {
		return models.OutdoorRecalculation{}, fmt.Errorf("resolve %q: %w", place, err)
	}

	name := geo.FormattedAddress
	if name == "" {
		name = place
	}

	saved, err := c.adapter.SaveOutdoorLocation(ctx, models.OutdoorLocation{
		Name:      name,
		Latitude:  geo.Latitude,
		Longitude: geo.Longitude,
		Active:    true,
	})
	if err != nil {
		return models.OutdoorRecalculation{}, mapAdapterError(err)
	}

	c.logger.Info().Str("location", saved.Name).Msg("outdoor location saved")
	return c.RecalculateOutdoor(ctx)
}

func (c *clientClimateService) RecalculateOutdoor(ctx context.Context) (models.OutdoorRecalculation, error) {
	result, err := c.adapter.RecalculateOutdoor(ctx)
	if err != nil {
		return models.OutdoorRecalculation{}, mapAdapterError(err)
	}
	return result, nil
}
