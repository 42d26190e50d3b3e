package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/riegum-client/internal/adapter"
	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/internal/validators"
	"github.com/MKhiriev/riegum-client/models"
)

type clientPlantService struct {
	adapter   adapter.RiegumAPI
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientPlantService(api adapter.RiegumAPI, validator validators.Validator, logger *logger.Logger) ClientPlantService {
	return &clientPlantService{adapter: api, validator: validator, logger: logger}
}

func (p *clientPlantService) List(ctx context.Context) ([]models.Plant, error) {
	plants, err := p.adapter.ListPlants(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return plants, nil
}

func (p *clientPlantService) Get(ctx context.Context, id int64) (models.Plant, error) {
	plant, err := p.adapter.GetPlant(ctx, id)
	if err != nil {
		return models.Plant{}, mapAdapterError(err)
	}
	return plant, nil
}

func (p *clientPlantService) Create(ctx context.Context, in models.PlantInput) (models.Plant, error) {
	if in.Cultivation == "" {
		in.Cultivation = models.CultivationIndoor
	}
	if err := p.validator.Validate(ctx, in); err != nil {
		return models.Plant{}, mapValidationError(err)
	}

	plant, err := p.adapter.CreatePlant(ctx, in)
	if err != nil {
		return models.Plant{}, mapAdapterError(err)
	}

	p.logger.Info().Int64("plant_id", plant.ID).Str("name", plant.Name).Msg("plant created")
	return plant, nil
}

func (p *clientPlantService) Update(ctx context.Context, id int64, in models.PlantInput) (models.Plant, error) {
	if err := p.validator.Validate(ctx, in); err != nil {
		return models.Plant{}, mapValidationError(err)
	}

	plant, err := p.adapter.UpdatePlant(ctx, id, in)
	if err != nil {
		return models.Plant{}, mapAdapterError(err)
	}
	return plant, nil
}

func (p *clientPlantService) Delete(ctx context.Context, id int64) error {
	if err := p.adapter.DeletePlant(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	p.logger.Info().Int64("plant_id", id).Msg("plant deleted")
	return nil
}

func (p *clientPlantService) DeleteImage(ctx context.Context, plantID, imageID int64) error {
	if err := p.adapter.DeletePlantImage(ctx, plantID, imageID); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (p *clientPlantService) Water(ctx context.Context, id int64, in models.WateringInput) (models.Watering, error) {
	if err := p.validator.Validate(ctx, in); err != nil {
		return models.Watering{}, mapValidationError(err)
	}

	watering, err := p.adapter.WaterPlant(ctx, id, in)
	if err != nil {
		return models.Watering{}, mapAdapterError(err)
	}
	return watering, nil
}

func (p *clientPlantService) History(ctx context.Context, id int64) (models.PlantHistory, error) {
	history, err := p.adapter.PlantHistory(ctx, id)
	if err != nil {
		return models.PlantHistory{}, mapAdapterError(err)
	}
	return history, nil
}

func (p *clientPlantService) RecalculateAll(ctx context.Context, temperature float64) (RecalculationReport, error) {
	report := RecalculationReport{Temperature: temperature, Failed: map[int64]error{}}

	if !validators.ValidTemperature(temperature) {
		return report, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrTemperatureOutOfRange)
	}

	plants, err := p.adapter.ListPlants(ctx)
	if err != nil {
		return report, mapAdapterError(err)
	}

	for _, plant := range plants {
		status, err := p.adapter.RecalculatePlant(ctx, plant.ID, temperature)
		if err != nil {
			if isSessionFailure(err) {
				return report, err
			}
			p.logger.Warn().Err(err).Int64("plant_id", plant.ID).Msg("recalculation skipped")
			report.Failed[plant.ID] = mapAdapterError(err)
			continue
		}

		plant.WateringStatus = status
		report.Updated = append(report.Updated, plant)
	}

	p.logger.Info().
		Float64("temperature", temperature).
		Int("updated", len(report.Updated)).
		Int("failed", len(report.Failed)).
		Msg("plants recalculated")
	return report, nil
}

func (p *clientPlantService) Due(ctx context.Context) ([]models.Plant, error) {
	plants, err := p.List(ctx)
	if err != nil {
		return nil, err
	}

	var due []models.Plant
	for _, plant := range plants {
		if plant.NeedsWater() {
			due = append(due, plant)
		}
	}
	return due, nil
}
