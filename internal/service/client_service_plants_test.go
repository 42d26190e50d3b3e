// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/riegum-client/internal/adapter"
	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/internal/mock"
	"github.com/MKhiriev/riegum-client/internal/session"
	"github.com/MKhiriev/riegum-client/internal/validators"
	"github.com/MKhiriev/riegum-client/models"
)

func newTestPlantSvc(t *testing.T, ctrl *gomock.Controller) (*clientPlantService, *mock.MockRiegumAPI) {
	t.Helper()
	mockAPI := mock.NewMockRiegumAPI(ctrl)
	return NewClientPlantService(mockAPI, validators.NewRiegumValidator(), logger.Nop()).(*clientPlantService), mockAPI
}

func testPlantInput() models.PlantInput {
	return models.PlantInput{
		Name:        "Gorilla Glue",
		Type:        models.PlantTypeFoto,
		Size:        models.PlantSizeLarge,
		PotLiters:   20,
		LastWatered: models.NewDate(time.Now().AddDate(0, 0, -3)),
	}
}

func notFound(op string) error {
	return fmt.Errorf("%s: %w", op, fmt.Errorf("%w: No encontrado.", adapter.ErrNotFound))
}

// ── CRUD ─────────────────────────────────────────────────────────────────────

func TestClientPlantService_Create_DefaultsToIndoor(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAPI := newTestPlantSvc(t, ctrl)
	ctx := context.Background()

	mockAPI.EXPECT().CreatePlant(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in models.PlantInput) (models.Plant, error) {
			assert.Equal(t, models.CultivationIndoor, in.Cultivation)
			return models.Plant{ID: 1, PlantInput: in}, nil
		},
	)

	plant, err := svc.Create(ctx, testPlantInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), plant.ID)
}

func TestClientPlantService_Create_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestPlantSvc(t, ctrl)

	in := testPlantInput()
	in.PotLiters = 0

	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidPotSize)
}

func TestClientPlantService_Create_ServerRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAPI := newTestPlantSvc(t, ctrl)

	mockAPI.EXPECT().CreatePlant(gomock.Any(), gomock.Any()).
		Return(models.Plant{}, fmt.Errorf("create plant request: %w", fmt.Errorf("%w: nombre_personalizado: Este campo es requerido.", adapter.ErrBadRequest)))

	_, err := svc.Create(context.Background(), testPlantInput())
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Contains(t, err.Error(), "nombre_personalizado: Este campo es requerido.")
}

func TestClientPlantService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAPI := newTestPlantSvc(t, ctrl)

	mockAPI.EXPECT().GetPlant(gomock.Any(), int64(99)).Return(models.Plant{}, notFound("get plant 99 request"))

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPlantNotFound)
}

func TestClientPlantService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAPI := newTestPlantSvc(t, ctrl)
	in := testPlantInput()

	mockAPI.EXPECT().UpdatePlant(gomock.Any(), int64(3), in).Return(models.Plant{ID: 3, PlantInput: in}, nil)

	plant, err := svc.Update(context.Background(), 3, in)
	require.NoError(t, err)
	assert.Equal(t, in, plant.PlantInput)
}

func TestClientPlantService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAPI := newTestPlantSvc(t, ctrl)

	mockAPI.EXPECT().DeletePlant(gomock.Any(), int64(3)).Return(nil)
	mockAPI.EXPECT().DeletePlant(gomock.Any(), int64(4)).Return(notFound("delete plant 4 request"))

	require.NoError(t, svc.Delete(context.Background(), 3))
	assert.ErrorIs(t, svc.Delete(context.Background(), 4), ErrPlantNotFound)
}

func TestClientPlantService_DeleteImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAPI := newTestPlantSvc(t, ctrl)

	mockAPI.EXPECT().DeletePlantImage(gomock.Any(), int64(3), int64(8)).Return(nil)
	require.NoError(t, svc.DeleteImage(context.Background(), 3, 8))
}

func TestClientPlantService_Water(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAPI := newTestPlantSvc(t, ctrl)

	mockAPI.EXPECT().WaterPlant(gomock.Any(), int64(3), models.WateringInput{}).Return(models.Watering{ID: 10, PlantID: 3}, nil)

	w, err := svc.Water(context.Background(), 3, models.WateringInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(10), w.ID)

	zero := 0
	_, err = svc.Water(context.Background(), 3, models.WateringInput{WaterML: &zero})
	assert.ErrorIs(t, err, validators.ErrInvalidWaterAmount)
}

func TestClientPlantService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAPI := newTestPlantSvc(t, ctrl)

	want := models.PlantHistory{Stats: models.HistoryStats{TotalWaterings: 2}}
	mockAPI.EXPECT().PlantHistory(gomock.Any(), int64(3)).Return(want, nil)

	got, err := svc.History(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── RecalculateAll ───────────────────────────────────────────────────────────

func TestClientPlantService_RecalculateAll_SkipsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAPI := newTestPlantSvc(t, ctrl)
	ctx := context.Background()

	plants := []models.Plant{{ID: 1}, {ID: 2}, {ID: 3}}
	mockAPI.EXPECT().ListPlants(ctx).Return(plants, nil)
	mockAPI.EXPECT().RecalculatePlant(ctx, int64(1), 32.5).Return(models.WateringStatus{FrequencyDays: 2}, nil)
	mockAPI.EXPECT().RecalculatePlant(ctx, int64(2), 32.5).Return(models.WateringStatus{}, notFound("recalculate plant 2 request"))
	mockAPI.EXPECT().RecalculatePlant(ctx, int64(3), 32.5).Return(models.WateringStatus{FrequencyDays: 1}, nil)

	report, err := svc.RecalculateAll(ctx, 32.5)
	require.NoError(t, err)
	assert.Equal(t, 32.5, report.Temperature)
	require.Len(t, report.Updated, 2)
	assert.Equal(t, 2, report.Updated[0].FrequencyDays)
	assert.Equal(t, int64(3), report.Updated[1].ID)
	require.Contains(t, report.Failed, int64(2))
	assert.ErrorIs(t, report.Failed[2], ErrPlantNotFound)
}

func TestClientPlantService_RecalculateAll_StopsOnSessionExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAPI := newTestPlantSvc(t, ctrl)

	mockAPI.EXPECT().ListPlants(gomock.Any()).Return([]models.Plant{{ID: 1}, {ID: 2}}, nil)
	mockAPI.EXPECT().RecalculatePlant(gomock.Any(), int64(1), 20.0).
		Return(models.WateringStatus{}, fmt.Errorf("recalculate plant 1 request: %w", session.ErrSessionExpired))

	_, err := svc.RecalculateAll(context.Background(), 20)
	assert.ErrorIs(t, err, session.ErrSessionExpired)
}

func TestClientPlantService_RecalculateAll_RejectsImplausibleTemperature(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestPlantSvc(t, ctrl)

	_, err := svc.RecalculateAll(context.Background(), 80)
	assert.ErrorIs(t, err, validators.ErrTemperatureOutOfRange)
}

func TestClientPlantService_RecalculateAll_ListFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAPI := newTestPlantSvc(t, ctrl)

	mockAPI.EXPECT().ListPlants(gomock.Any()).Return(nil, fmt.Errorf("list plants request: %w", session.ErrNetworkFailure))

	_, err := svc.RecalculateAll(context.Background(), 20)
	assert.ErrorIs(t, err, session.ErrNetworkFailure)
}

// ── Due ──────────────────────────────────────────────────────────────────────

func TestClientPlantService_Due(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAPI := newTestPlantSvc(t, ctrl)

	mockAPI.EXPECT().ListPlants(gomock.Any()).Return([]models.Plant{
		{ID: 1, WateringStatus: models.WateringStatus{DaysLeft: 2}},
		{ID: 2, WateringStatus: models.WateringStatus{DaysLeft: 0}},
		{ID: 3, WateringStatus: models.WateringStatus{DaysLeft: -4}},
	}, nil)

	due, err := svc.Due(context.Background())
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, int64(2), due[0].ID)
	assert.Equal(t, int64(3), due[1].ID)
}
