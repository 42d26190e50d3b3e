package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/riegum-client/internal/adapter"
	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/internal/validators"
	"github.com/MKhiriev/riegum-client/models"
)

type clientCalendarService struct {
	adapter   adapter.RiegumAPI
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientCalendarService(api adapter.RiegumAPI, validator validators.Validator, logger *logger.Logger) ClientCalendarService {
	return &clientCalendarService{adapter: api, validator: validator, logger: logger}
}

func (c *clientCalendarService) Status(ctx context.Context) (models.CalendarStatus, error) {
	status, err := c.adapter.CalendarStatus(ctx)
	if err != nil {
		return models.CalendarStatus{}, mapAdapterError(err)
	}
	return status, nil
}

func (c *clientCalendarService) Disconnect(ctx context.Context) (string, error) {
	msg, err := c.adapter.DisconnectCalendar(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}

	c.logger.Info().Msg("calendar disconnected")
	return msg, nil
}

func (c *clientCalendarService) LinkURL() string {
	return c.adapter.CalendarLinkURL()
}

func (c *clientCalendarService) Settings(ctx context.Context) (models.CalendarSettings, error) {
	settings, err := c.adapter.GetCalendarSettings(ctx)
	if err != nil {
		return models.CalendarSettings{}, mapAdapterError(err)
	}
	return settings, nil
}

func (c *clientCalendarService) UpdateEventTime(ctx context.Context, hhmm string) (string, error) {
	update := models.CalendarTimeUpdate{Time: hhmm}
	if err := c.validator.Validate(ctx, update); err != nil {
		return "", mapValidationError(err)
	}

	settings, err := c.Settings(ctx)
	if err != nil {
		return "", fmt.Errorf("check calendar link: %w", err)
	}
	if !settings.Linked {
		return "", ErrCalendarNotLinked
	}

	msg, err := c.adapter.UpdateCalendarTime(ctx, update.Time)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return msg, nil
}
