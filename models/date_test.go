package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "date", input: `"2026-03-14"`, want: "2026-03-14"},
		{name: "datetime truncated", input: `"2026-03-14T08:30:00Z"`, want: "2026-03-14"},
		{name: "null", input: `null`, want: ""},
		{name: "empty string", input: `""`, want: ""},
		{name: "garbage", input: `"14/03/2026"`, wantErr: true},
		{name: "number", input: `20260314`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(time.Date(2026, 3, 14, 23, 59, 0, 0, time.Local)))
	require.NoError(t, err)
	assert.JSONEq(t, `"2026-03-14"`, string(b))

	b, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

// TestPlant_DecodesComputedFields verifies a plant from the API fills both
// the writable and the computed parts.
func TestPlant_DecodesComputedFields(t *testing.T) {
	raw := `{
		"id": 7, "usuario": 1, "nombre_personalizado": "Lemon Haze",
		"tipo_planta": "Foto", "tamano_planta": "Mediana", "tipo_cultivo": "indoor",
		"tamano_maceta_litros": 11.0, "fecha_ultimo_riego": "2026-03-10",
		"en_floracion": true, "recommended_water_ml": 2200, "frequency_days": 4,
		"next_watering_date": "2026-03-14", "days_left": 0, "estado_riego": "hoy",
		"estado_texto": "Necesita riego hoy", "sugerencia_suplementos": "Floración"
	}`

	var p Plant
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, "Lemon Haze", p.Name)
	assert.Equal(t, PlantTypeFoto, p.Type)
	assert.Equal(t, "2026-03-10", p.LastWatered.String())
	assert.Equal(t, 2200, p.RecommendedWaterML)
	assert.Equal(t, WateringToday, p.State)
	assert.True(t, p.NeedsWater())
}

func TestPlantInput_OmitsComputedFields(t *testing.T) {
	p := Plant{ID: 3}
	p.Name = "Gelato"
	p.DaysLeft = 2

	b, err := json.Marshal(p.PlantInput)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(b, &fields))
	assert.Equal(t, "Gelato", fields["nombre_personalizado"])
	assert.NotContains(t, fields, "days_left")
	assert.NotContains(t, fields, "id")
}
