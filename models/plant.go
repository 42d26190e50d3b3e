package models

// PlantType is the flowering behaviour of a plant.
type PlantType string

const (
	PlantTypeAuto PlantType = "Auto" // autoflowering
	PlantTypeFoto PlantType = "Foto" // photoperiodic
)

// PlantSize is the size class of a plant.
type PlantSize string

const (
	PlantSizeSmall  PlantSize = "Pequeña"
	PlantSizeMedium PlantSize = "Mediana"
	PlantSizeLarge  PlantSize = "Grande"
)

// Cultivation tells whether a plant grows indoors or outdoors.
type Cultivation string

const (
	CultivationIndoor  Cultivation = "indoor"
	CultivationOutdoor Cultivation = "outdoor"
)

// WateringState is the server's classification of how urgently a plant
// needs water.
type WateringState string

const (
	WateringNotNeeded WateringState = "no_necesita"
	WateringSoon      WateringState = "pronto"
	WateringToday     WateringState = "hoy"
	WateringOverdue   WateringState = "urgente"
)

// PlantInput holds the writable fields of a plant.
type PlantInput struct {
	Name        string      `json:"nombre_personalizado"`
	Type        PlantType   `json:"tipo_planta"`
	Size        PlantSize   `json:"tamano_planta"`
	Cultivation Cultivation `json:"tipo_cultivo,omitempty"`
	PotLiters   float64     `json:"tamano_maceta_litros"`
	LastWatered Date        `json:"fecha_ultimo_riego"`
	Flowering   bool        `json:"en_floracion"`
}

// WateringStatus is the watering schedule computed by the server for a
// plant. The client only displays it.
type WateringStatus struct {
	RecommendedWaterML int           `json:"recommended_water_ml"`
	FrequencyDays      int           `json:"frequency_days"`
	NextWateringDate   Date          `json:"next_watering_date"`
	DaysLeft           int           `json:"days_left"`
	State              WateringState `json:"estado_riego"`
	StateText          string        `json:"estado_texto"`
	SupplementHint     string        `json:"sugerencia_suplementos"`
}

// NeedsWater reports whether watering is due today or overdue.
func (s WateringStatus) NeedsWater() bool {
	return s.DaysLeft <= 0
}

// Plant is a plant as returned by the API.
type Plant struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"usuario"`
	PlantInput
	WateringStatus
}
