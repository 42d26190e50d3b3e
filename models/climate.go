package models

// IndoorSettings describes the user's indoor growing environment.
type IndoorSettings struct {
	ID               int64    `json:"id,omitempty"`
	Temperature      *float64 `json:"temperatura_promedio"`
	RelativeHumidity *float64 `json:"humedad_relativa"`
}

// OutdoorLocation is the place used for automatic outdoor recalculation.
type OutdoorLocation struct {
	Name      string  `json:"nombre_localidad"`
	Latitude  float64 `json:"latitud"`
	Longitude float64 `json:"longitud"`
	Active    bool    `json:"activo"`
}

// Climate is the weather summary used for a recalculation. Location is only
// set on climates looked up by place name.
type Climate struct {
	MaxTemperature float64 `json:"temperatura_max"`
	Precipitation  float64 `json:"precipitacion"`
	Location       string  `json:"localidad,omitempty"`
}

// OutdoorRecalculation is the result of recalculating outdoor plants.
type OutdoorRecalculation struct {
	Message string   `json:"mensaje"`
	Climate *Climate `json:"clima"`
}

// GeocodeResult is a resolved place.
type GeocodeResult struct {
	FormattedAddress string
	Latitude         float64
	Longitude        float64
}

// ClimatePreference is the locally remembered input for manual
// recalculation: either a manual temperature or the last fetched climate.
type ClimatePreference struct {
	ManualTemperature *float64
	SavedClimate      *Climate
}
