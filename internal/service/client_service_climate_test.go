package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/riegum-client/internal/adapter"
	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/internal/mock"
	"github.com/MKhiriev/riegum-client/internal/session"
	"github.com/MKhiriev/riegum-client/internal/store"
	"github.com/MKhiriev/riegum-client/internal/validators"
	"github.com/MKhiriev/riegum-client/models"
)

type climateMocks struct {
	session  *mock.MockSessionManager
	api      *mock.MockRiegumAPI
	geocoder *mock.MockGeocoder
	prefs    *mock.MockPreferenceRepository
}

func newTestClimateSvc(t *testing.T, ctrl *gomock.Controller, user string) (*clientClimateService, climateMocks) {
	t.Helper()
	m := climateMocks{
		session:  mock.NewMockSessionManager(ctrl),
		api:      mock.NewMockRiegumAPI(ctrl),
		geocoder: mock.NewMockGeocoder(ctrl),
		prefs:    mock.NewMockPreferenceRepository(ctrl),
	}
	m.session.EXPECT().Session().Return(session.Session{DisplayName: user}).AnyTimes()

	svc := NewClientClimateService(m.session, m.api, m.geocoder, m.prefs, validators.NewRiegumValidator(), logger.Nop())
	return svc.(*clientClimateService), m
}

// ── preferences ──────────────────────────────────────────────────────────────

func TestClientClimateService_SetManualTemperature_ForgetsClimate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestClimateSvc(t, ctrl, "alice")
	ctx := context.Background()

	gomock.InOrder(
		m.prefs.EXPECT().SetPreference(ctx, "alice", prefManualTemperature, "27.5").Return(nil),
		m.prefs.EXPECT().DeletePreference(ctx, "alice", prefSavedClimate).Return(nil),
	)

	require.NoError(t, svc.SetManualTemperature(ctx, 27.5))
}

func TestClientClimateService_SetManualTemperature_OutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestClimateSvc(t, ctrl, "alice")

	err := svc.SetManualTemperature(context.Background(), 51)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrTemperatureOutOfRange)
}

func TestClientClimateService_SetManualTemperature_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestClimateSvc(t, ctrl, "")

	assert.ErrorIs(t, svc.SetManualTemperature(context.Background(), 20), ErrNotLoggedIn)
}

func TestClientClimateService_FetchClimate_ForgetsManualTemperature(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestClimateSvc(t, ctrl, "alice")
	ctx := context.Background()

	climate := models.Climate{MaxTemperature: 18.5, Precipitation: 1.2, Location: "Rosario"}
	m.api.EXPECT().Weather(ctx, "Rosario").Return(climate, nil)
	gomock.InOrder(
		m.prefs.EXPECT().SetPreference(ctx, "alice", prefSavedClimate, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, value string) error {
				assert.JSONEq(t, `{"type":"clima","value":18.5,"precipitacion":1.2,"location":"Rosario"}`, value)
				return nil
			},
		),
		m.prefs.EXPECT().DeletePreference(ctx, "alice", prefManualTemperature).Return(nil),
	)

	got, err := svc.FetchClimate(ctx, "  Rosario ")
	require.NoError(t, err)
	assert.Equal(t, climate, got)
}

func TestClientClimateService_FetchClimate_EmptyLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestClimateSvc(t, ctrl, "alice")

	_, err := svc.FetchClimate(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyLocation)
}

func TestClientClimateService_FetchClimate_WeatherFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestClimateSvc(t, ctrl, "alice")

	m.api.EXPECT().Weather(gomock.Any(), "Atlantis").
		Return(models.Climate{}, fmt.Errorf("weather request: %w", fmt.Errorf("%w: upstream", adapter.ErrBadGateway)))

	_, err := svc.FetchClimate(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, adapter.ErrBadGateway)
}

func TestClientClimateService_RecalculationTemperature(t *testing.T) {
	tests := []struct {
		name    string
		manual  string
		climate string
		want    float64
		wantErr error
	}{
		{name: "manual wins", manual: "24", want: 24},
		{name: "saved climate", climate: `{"type":"clima","value":31.4,"location":"Salta"}`, want: 31.4},
		{name: "unreadable manual falls back", manual: "warm", climate: `{"type":"clima","value":12,"location":"Ushuaia"}`, want: 12},
		{name: "nothing stored", wantErr: ErrNoClimateData},
		{name: "foreign blob ignored", climate: `{"type":"otro","value":3}`, wantErr: ErrNoClimateData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestClimateSvc(t, ctrl, "alice")

			stored := func(v string) (string, error) {
				if v == "" {
					return "", store.ErrPreferenceNotFound
				}
				return v, nil
			}
			m.prefs.EXPECT().GetPreference(gomock.Any(), "alice", prefManualTemperature).Return(stored(tt.manual))
			m.prefs.EXPECT().GetPreference(gomock.Any(), "alice", prefSavedClimate).Return(stored(tt.climate)).MaxTimes(1)

			got, err := svc.RecalculationTemperature(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientClimateService_Preference_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestClimateSvc(t, ctrl, "alice")

	m.prefs.EXPECT().GetPreference(gomock.Any(), "alice", prefManualTemperature).Return("", store.ErrExecutingQuery)

	_, err := svc.Preference(context.Background())
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── indoor ───────────────────────────────────────────────────────────────────

func TestClientClimateService_UpdateIndoorSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestClimateSvc(t, ctrl, "alice")

	temp, humidity := 23.0, 60.0
	in := models.IndoorSettings{Temperature: &temp, RelativeHumidity: &humidity}
	m.api.EXPECT().UpdateIndoorSettings(gomock.Any(), in).Return(in, nil)

	got, err := svc.UpdateIndoorSettings(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	bad := 120.0
	_, err = svc.UpdateIndoorSettings(context.Background(), models.IndoorSettings{RelativeHumidity: &bad})
	assert.ErrorIs(t, err, validators.ErrHumidityOutOfRange)
}

// ── outdoor ──────────────────────────────────────────────────────────────────

func TestClientClimateService_SetOutdoorLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestClimateSvc(t, ctrl, "alice")
	ctx := context.Background()

	want := models.OutdoorRecalculation{Message: "3 plantas actualizadas", Climate: &models.Climate{MaxTemperature: 29}}
	gomock.InOrder(
		m.geocoder.EXPECT().Geocode(ctx, "Mendoza").
			Return(models.GeocodeResult{FormattedAddress: "Mendoza, Argentina", Latitude: -32.89, Longitude: -68.83}, nil),
		m.api.EXPECT().SaveOutdoorLocation(ctx, models.OutdoorLocation{
			Name: "Mendoza, Argentina", Latitude: -32.89, Longitude: -68.83, Active: true,
		}).DoAndReturn(func(_ context.Context, loc models.OutdoorLocation) (models.OutdoorLocation, error) {
			return loc, nil
		}),
		m.api.EXPECT().RecalculateOutdoor(ctx).Return(want, nil),
	)

	got, err := svc.SetOutdoorLocation(ctx, "Mendoza")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientClimateService_SetOutdoorLocation_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestClimateSvc(t, ctrl, "alice")

	m.geocoder.EXPECT().Geocode(gomock.Any(), "Atlantis").Return(models.GeocodeResult{}, adapter.ErrLocationNotFound)

	_, err := svc.SetOutdoorLocation(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, adapter.ErrLocationNotFound)
}

func TestClientClimateService_RecalculateOutdoor_NoLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestClimateSvc(t, ctrl, "alice")

	m.api.EXPECT().RecalculateOutdoor(gomock.Any()).
		Return(models.OutdoorRecalculation{}, fmt.Errorf("recalculate outdoor request: %w", fmt.Errorf("%w: No hay localidad configurada", adapter.ErrNotFound)))

	_, err := svc.RecalculateOutdoor(context.Background())
	assert.ErrorIs(t, err, ErrNoOutdoorLocation)
}
