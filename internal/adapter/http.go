package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/internal/session"
	"github.com/MKhiriev/riegum-client/models"
)

const (
	registerPath         = "/api/auth/register/"
	plantsPath           = "/api/plantas/"
	wateringsPath        = "/api/riegos/"
	indoorSettingsPath   = "/api/configuracion-usuario/"
	outdoorLocationPath  = "/api/localidad-outdoor/"
	outdoorRecalcPath    = "/api/recalcular-outdoor/"
	weatherPath          = "/api/weather/"
	calendarStatusPath   = "/api/google-calendar-status/"
	calendarDisconnect   = "/api/google-calendar-disconnect/"
	calendarSettingsPath = "/api/configuracion-calendario/"
	calendarAuthPath     = "/google-calendar/auth/"
)

type httpRiegumAdapter struct {
	session SessionDoer
	logger  *logger.Logger
}

// NewHTTPRiegumAdapter constructs the REST implementation of [RiegumAPI] on
// top of a session client.
func NewHTTPRiegumAdapter(sess SessionDoer, logger *logger.Logger) RiegumAPI {
	return &httpRiegumAdapter{session: sess, logger: logger}
}

func plantPath(id int64, action string) string {
	p := plantsPath + strconv.FormatInt(id, 10) + "/"
	if action != "" {
		p += action + "/"
	}
	return p
}

// call dispatches req and decodes a 2xx body into out when out is non-nil.
func (h *httpRiegumAdapter) call(ctx context.Context, req session.Request, out any) error {
	resp, err := h.session.Do(ctx, req)
	if err != nil {
		return err
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	if err = resp.DecodeJSON(out); err != nil {
		logger.FromContext(ctx).Err(err).Str("path", req.Path).Msg("unexpected response body")
		return err
	}
	return nil
}

// Register implements [RiegumAPI]. POST /api/auth/register/, answered with
// 201 and {id, username}.
func (h *httpRiegumAdapter) Register(ctx context.Context, reg models.Registration) (models.RegisteredUser, error) {
	var out models.RegisteredUser
	err := h.call(ctx, session.Request{Method: http.MethodPost, Path: registerPath, Body: reg, Public: true}, &out)
	if err != nil {
		return models.RegisteredUser{}, fmt.Errorf("register request: %w", err)
	}
	return out, nil
}

func (h *httpRiegumAdapter) ListPlants(ctx context.Context) ([]models.Plant, error) {
	var out []models.Plant
	if err := h.call(ctx, session.Request{Method: http.MethodGet, Path: plantsPath}, &out); err != nil {
		return nil, fmt.Errorf("list plants request: %w", err)
	}
	return out, nil
}

func (h *httpRiegumAdapter) CreatePlant(ctx context.Context, in models.PlantInput) (models.Plant, error) {
	var out models.Plant
	if err := h.call(ctx, session.Request{Method: http.MethodPost, Path: plantsPath, Body: in}, &out); err != nil {
		return models.Plant{}, fmt.Errorf("create plant request: %w", err)
	}
	return out, nil
}

func (h *httpRiegumAdapter) GetPlant(ctx context.Context, id int64) (models.Plant, error) {
	var out models.Plant
	if err := h.call(ctx, session.Request{Method: http.MethodGet, Path: plantPath(id, "")}, &out); err != nil {
		return models.Plant{}, fmt.Errorf("get plant %d request: %w", id, err)
	}
	return out, nil
}

func (h *httpRiegumAdapter) UpdatePlant(ctx context.Context, id int64, in models.PlantInput) (models.Plant, error) {
	var out models.Plant
	if err := h.call(ctx, session.Request{Method: http.MethodPut, Path: plantPath(id, ""), Body: in}, &out); err != nil {
		return models.Plant{}, fmt.Errorf("update plant %d request: %w", id, err)
	}
	return out, nil
}

func (h *httpRiegumAdapter) DeletePlant(ctx context.Context, id int64) error {
	if err := h.call(ctx, session.Request{Method: http.MethodDelete, Path: plantPath(id, "")}, nil); err != nil {
		return fmt.Errorf("delete plant %d request: %w", id, err)
	}
	return nil
}

func (h *httpRiegumAdapter) DeletePlantImage(ctx context.Context, plantID, imageID int64) error {
	path := plantPath(plantID, "imagenes") + strconv.FormatInt(imageID, 10) + "/"
	if err := h.call(ctx, session.Request{Method: http.MethodDelete, Path: path}, nil); err != nil {
		return fmt.Errorf("delete image %d of plant %d request: %w", imageID, plantID, err)
	}
	return nil
}

func (h *httpRiegumAdapter) WaterPlant(ctx context.Context, id int64, in models.WateringInput) (models.Watering, error) {
	var out models.Watering
	if err := h.call(ctx, session.Request{Method: http.MethodPost, Path: plantPath(id, "regar"), Body: in}, &out); err != nil {
		return models.Watering{}, fmt.Errorf("water plant %d request: %w", id, err)
	}
	return out, nil
}

func (h *httpRiegumAdapter) PlantStatus(ctx context.Context, id int64) (models.WateringStatus, error) {
	var out models.WateringStatus
	if err := h.call(ctx, session.Request{Method: http.MethodGet, Path: plantPath(id, "estado")}, &out); err != nil {
		return models.WateringStatus{}, fmt.Errorf("plant %d status request: %w", id, err)
	}
	return out, nil
}

func (h *httpRiegumAdapter) RecalculatePlant(ctx context.Context, id int64, temperature float64) (models.WateringStatus, error) {
	req := session.Request{
		Method: http.MethodGet,
		Path:   plantPath(id, "recalcular"),
		Query:  url.Values{"temperatura": {strconv.FormatFloat(temperature, 'f', -1, 64)}},
	}

	var out models.WateringStatus
	if err := h.call(ctx, req, &out); err != nil {
		return models.WateringStatus{}, fmt.Errorf("recalculate plant %d request: %w", id, err)
	}
	return out, nil
}

func (h *httpRiegumAdapter) PlantHistory(ctx context.Context, id int64) (models.PlantHistory, error) {
	var out models.PlantHistory
	if err := h.call(ctx, session.Request{Method: http.MethodGet, Path: plantPath(id, "historial")}, &out); err != nil {
		return models.PlantHistory{}, fmt.Errorf("plant %d history request: %w", id, err)
	}
	return out, nil
}

func (h *httpRiegumAdapter) ListWaterings(ctx context.Context, plantID int64) ([]models.Watering, error) {
	req := session.Request{
		Method: http.MethodGet,
		Path:   wateringsPath,
		Query:  url.Values{"planta": {strconv.FormatInt(plantID, 10)}},
	}

	var out []models.Watering
	if err := h.call(ctx, req, &out); err != nil {
		return nil, fmt.Errorf("list waterings request: %w", err)
	}
	return out, nil
}

func (h *httpRiegumAdapter) GetIndoorSettings(ctx context.Context) (models.IndoorSettings, error) {
	var out models.IndoorSettings
	if err := h.call(ctx, session.Request{Method: http.MethodGet, Path: indoorSettingsPath}, &out); err != nil {
		return models.IndoorSettings{}, fmt.Errorf("indoor settings request: %w", err)
	}
	return out, nil
}

func (h *httpRiegumAdapter) UpdateIndoorSettings(ctx context.Context, s models.IndoorSettings) (models.IndoorSettings, error) {
	var out models.IndoorSettings
	if err := h.call(ctx, session.Request{Method: http.MethodPatch, Path: indoorSettingsPath, Body: s}, &out); err != nil {
		return models.IndoorSettings{}, fmt.Errorf("update indoor settings request: %w", err)
	}
	return out, nil
}

func (h *httpRiegumAdapter) GetOutdoorLocation(ctx context.Context) (models.OutdoorLocation, error) {
	var out models.OutdoorLocation
	if err := h.call(ctx, session.Request{Method: http.MethodGet, Path: outdoorLocationPath}, &out); err != nil {
		return models.OutdoorLocation{}, fmt.Errorf("outdoor location request: %w", err)
	}
	return out, nil
}

func (h *httpRiegumAdapter) SaveOutdoorLocation(ctx context.Context, loc models.OutdoorLocation) (models.OutdoorLocation, error) {
	var out models.OutdoorLocation
	if err := h.call(ctx, session.Request{Method: http.MethodPost, Path: outdoorLocationPath, Body: loc}, &out); err != nil {
		return models.OutdoorLocation{}, fmt.Errorf("save outdoor location request: %w", err)
	}
	return out, nil
}

func (h *httpRiegumAdapter) RecalculateOutdoor(ctx context.Context) (models.OutdoorRecalculation, error) {
	var out models.OutdoorRecalculation
	if err := h.call(ctx, session.Request{Method: http.MethodPost, Path: outdoorRecalcPath}, &out); err != nil {
		return models.OutdoorRecalculation{}, fmt.Errorf("recalculate outdoor request: %w", err)
	}
	return out, nil
}

// currentConditions is the part of the Google Weather payload relayed by
// /api/weather/ that the client reads.
type currentConditions struct {
	Temperature struct {
		Degrees *float64 `json:"degrees"`
		Value   *float64 `json:"value"`
	} `json:"temperature"`
	Precipitation struct {
		Qpf struct {
			Quantity float64 `json:"quantity"`
		} `json:"qpf"`
	} `json:"precipitation"`
}

// Weather implements [RiegumAPI]. GET /api/weather/?location=, which relays
// the current conditions for the place.
func (h *httpRiegumAdapter) Weather(ctx context.Context, location string) (models.Climate, error) {
	req := session.Request{
		Method: http.MethodGet,
		Path:   weatherPath,
		Query:  url.Values{"location": {location}},
	}

	var out currentConditions
	if err := h.call(ctx, req, &out); err != nil {
		return models.Climate{}, fmt.Errorf("weather request: %w", err)
	}

	climate := models.Climate{Precipitation: out.Precipitation.Qpf.Quantity, Location: location}
	switch {
	case out.Temperature.Degrees != nil:
		climate.MaxTemperature = *out.Temperature.Degrees
	case out.Temperature.Value != nil:
		climate.MaxTemperature = *out.Temperature.Value
	default:
		return models.Climate{}, fmt.Errorf("weather request: %w: no temperature for %q", ErrUnexpectedStatus, location)
	}
	return climate, nil
}

func (h *httpRiegumAdapter) CalendarStatus(ctx context.Context) (models.CalendarStatus, error) {
	var out models.CalendarStatus
	if err := h.call(ctx, session.Request{Method: http.MethodGet, Path: calendarStatusPath}, &out); err != nil {
		return models.CalendarStatus{}, fmt.Errorf("calendar status request: %w", err)
	}
	return out, nil
}

func (h *httpRiegumAdapter) DisconnectCalendar(ctx context.Context) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := h.call(ctx, session.Request{Method: http.MethodPost, Path: calendarDisconnect}, &out); err != nil {
		return "", fmt.Errorf("calendar disconnect request: %w", err)
	}
	return out.Message, nil
}

func (h *httpRiegumAdapter) GetCalendarSettings(ctx context.Context) (models.CalendarSettings, error) {
	var out models.CalendarSettings
	if err := h.call(ctx, session.Request{Method: http.MethodGet, Path: calendarSettingsPath}, &out); err != nil {
		return models.CalendarSettings{}, fmt.Errorf("calendar settings request: %w", err)
	}
	return out, nil
}

func (h *httpRiegumAdapter) UpdateCalendarTime(ctx context.Context, hhmm string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	req := session.Request{Method: http.MethodPatch, Path: calendarSettingsPath, Body: models.CalendarTimeUpdate{Time: hhmm}}
	if err := h.call(ctx, req, &out); err != nil {
		return "", fmt.Errorf("update calendar time request: %w", err)
	}
	return out.Message, nil
}

func (h *httpRiegumAdapter) CalendarLinkURL() string {
	return h.session.ResolveURL(calendarAuthPath)
}
