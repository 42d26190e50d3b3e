package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrInvalidEmail  = errors.New("invalid email address")

	ErrEmptyPlantName      = errors.New("plant name is required")
	ErrPlantNameTooLong    = errors.New("plant name is too long")
	ErrInvalidPlantType    = errors.New("invalid plant type")
	ErrInvalidPlantSize    = errors.New("invalid plant size")
	ErrInvalidCultivation  = errors.New("invalid cultivation type")
	ErrInvalidPotSize      = errors.New("pot size must be at least 0.1 liters")
	ErrEmptyLastWatered    = errors.New("last watering date is required")
	ErrLastWateredInFuture = errors.New("last watering date is in the future")
	ErrInvalidWaterAmount  = errors.New("water amount must be positive")

	ErrTemperatureOutOfRange = errors.New("temperature out of range")
	ErrHumidityOutOfRange    = errors.New("relative humidity out of range")
	ErrInvalidEventTime      = errors.New("event time must be HH:MM")
)
