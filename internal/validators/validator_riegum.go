package validators

import (
	"context"
	"net/mail"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/riegum-client/models"
)

// RiegumValidator implements the Validator interface for the forms of the
// client: Registration, PlantInput, WateringInput, IndoorSettings and
// CalendarTimeUpdate.
type RiegumValidator struct {
	now func() time.Time
}

func NewRiegumValidator() Validator {
	return &RiegumValidator{now: time.Now}
}

func (v *RiegumValidator) Validate(ctx context.Context, data any, fields ...string) error {
	switch value := data.(type) {
	case models.Registration:
		return v.validateRegistration(ctx, value, fields...)
	case *models.Registration:
		return v.validateRegistration(ctx, *value, fields...)

	case models.PlantInput:
		return v.validatePlantInput(ctx, value, fields...)
	case *models.PlantInput:
		return v.validatePlantInput(ctx, *value, fields...)

	case models.WateringInput:
		return v.validateWateringInput(ctx, value, fields...)
	case *models.WateringInput:
		return v.validateWateringInput(ctx, *value, fields...)

	case models.IndoorSettings:
		return v.validateIndoorSettings(ctx, value, fields...)
	case *models.IndoorSettings:
		return v.validateIndoorSettings(ctx, *value, fields...)

	case models.CalendarTimeUpdate:
		return v.validateCalendarTimeUpdate(ctx, value, fields...)
	case *models.CalendarTimeUpdate:
		return v.validateCalendarTimeUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RiegumValidator) validateRegistration(_ context.Context, reg models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if reg.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if reg.Password == "" {
				return ErrEmptyPassword
			}
		case FieldEmail:
			// optional, but must parse when given
			if reg.Email == "" {
				continue
			}
			if addr, err := mail.ParseAddress(reg.Email); err != nil || addr.Address != reg.Email {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RiegumValidator) validatePlantInput(_ context.Context, in models.PlantInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPlantName, FieldPlantType, FieldPlantSize, FieldCultivation, FieldPotLiters, FieldLastWatered}
	}

	for _, f := range fields {
		switch f {
		case FieldPlantName:
			if in.Name == "" {
				return ErrEmptyPlantName
			}
			if utf8.RuneCountInString(in.Name) > MaxPlantNameLength {
				return ErrPlantNameTooLong
			}
		case FieldPlantType:
			if !slices.Contains(allowedPlantTypes, in.Type) {
				return ErrInvalidPlantType
			}
		case FieldPlantSize:
			if !slices.Contains(allowedPlantSizes, in.Size) {
				return ErrInvalidPlantSize
			}
		case FieldCultivation:
			if !slices.Contains(allowedCultivations, in.Cultivation) {
				return ErrInvalidCultivation
			}
		case FieldPotLiters:
			if in.PotLiters < MinPotLiters {
				return ErrInvalidPotSize
			}
		case FieldLastWatered:
			if in.LastWatered.IsZero() {
				return ErrEmptyLastWatered
			}
			if in.LastWatered.After(models.NewDate(v.now()).Time) {
				return ErrLastWateredInFuture
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RiegumValidator) validateWateringInput(_ context.Context, in models.WateringInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWaterML}
	}

	for _, f := range fields {
		switch f {
		case FieldWaterML:
			if in.WaterML != nil && *in.WaterML <= 0 {
				return ErrInvalidWaterAmount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RiegumValidator) validateIndoorSettings(_ context.Context, s models.IndoorSettings, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTemperature, FieldRelativeHumidity}
	}

	for _, f := range fields {
		switch f {
		case FieldTemperature:
			if s.Temperature != nil && !ValidTemperature(*s.Temperature) {
				return ErrTemperatureOutOfRange
			}
		case FieldRelativeHumidity:
			if s.RelativeHumidity != nil && (*s.RelativeHumidity < MinHumidity || *s.RelativeHumidity > MaxHumidity) {
				return ErrHumidityOutOfRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RiegumValidator) validateCalendarTimeUpdate(_ context.Context, u models.CalendarTimeUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEventTime}
	}

	for _, f := range fields {
		switch f {
		case FieldEventTime:
			if len(u.Time) != len("15:04") {
				return ErrInvalidEventTime
			}
			if _, err := time.Parse("15:04", u.Time); err != nil {
				return ErrInvalidEventTime
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidTemperature reports whether t is a plausible average temperature in
// Celsius.
func ValidTemperature(t float64) bool {
	return t >= MinTemperature && t <= MaxTemperature
}
