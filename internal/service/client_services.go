package service

import (
	"github.com/MKhiriev/riegum-client/internal/adapter"
	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/internal/store"
	"github.com/MKhiriev/riegum-client/internal/validators"
)

type ClientServices struct {
	AuthService     ClientAuthService
	PlantService    ClientPlantService
	ClimateService  ClientClimateService
	CalendarService ClientCalendarService
	WatchJob        ClientWateringWatchJob
}

func NewClientServices(
	sess SessionManager,
	api adapter.RiegumAPI,
	geocoder adapter.Geocoder,
	localStore *store.ClientStorages,
	logger *logger.Logger,
) *ClientServices {
	validator := validators.NewRiegumValidator()
	plantSvc := NewClientPlantService(api, validator, logger)

	return &ClientServices{
		AuthService:     NewClientAuthService(sess, api, validator, logger),
		PlantService:    plantSvc,
		ClimateService:  NewClientClimateService(sess, api, geocoder, localStore.Preferences, validator, logger),
		CalendarService: NewClientCalendarService(api, validator, logger),
		WatchJob:        NewClientWateringWatchJob(plantSvc, logger),
	}
}
