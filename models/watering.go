package models

// WateringInput is the optional body of a watering action.
type WateringInput struct {
	WaterML  *int   `json:"cantidad_agua_ml,omitempty"`
	Comments string `json:"comentarios,omitempty"`
}

// Watering is a recorded watering of a plant.
type Watering struct {
	ID          int64    `json:"id"`
	PlantID     int64    `json:"planta"`
	Date        Date     `json:"fecha"`
	WaterML     *int     `json:"cantidad_agua_ml"`
	Comments    string   `json:"comentarios"`
	WaterPH     *float64 `json:"ph_agua"`
	WaterEC     *float64 `json:"ec_agua"`
	Supplements string   `json:"suplementos_aplicados"`
}

// HistoryStats aggregates the watering history of a plant.
type HistoryStats struct {
	TotalWaterings   int      `json:"total_riegos"`
	TotalWaterML     int      `json:"total_agua_ml"`
	AverageWaterML   float64  `json:"promedio_agua_ml"`
	MaxWaterML       int      `json:"max_agua_ml"`
	MinWaterML       int      `json:"min_agua_ml"`
	FirstWatering    Date     `json:"primer_riego_fecha"`
	LastWatering     Date     `json:"ultimo_riego_fecha"`
	AverageFrequency *float64 `json:"frecuencia_promedio_dias"`
}

// PlantHistory is the watering history of a plant, newest first.
type PlantHistory struct {
	Stats     HistoryStats `json:"estadisticas"`
	Waterings []Watering   `json:"historial_riegos"`
}
