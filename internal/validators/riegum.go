package validators

import "github.com/MKhiriev/riegum-client/models"

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldEmail    = "email"

	FieldPlantName   = "nombre_personalizado"
	FieldPlantType   = "tipo_planta"
	FieldPlantSize   = "tamano_planta"
	FieldCultivation = "tipo_cultivo"
	FieldPotLiters   = "tamano_maceta_litros"
	FieldLastWatered = "fecha_ultimo_riego"

	FieldWaterML = "cantidad_agua_ml"

	FieldTemperature      = "temperatura_promedio"
	FieldRelativeHumidity = "humedad_relativa"

	FieldEventTime = "time"
)

// Limits accepted by the Riegum API.
const (
	MaxPlantNameLength = 100
	MinPotLiters       = 0.1

	MinTemperature = -10.0
	MaxTemperature = 50.0
	MinHumidity    = 0.0
	MaxHumidity    = 100.0
)

var allowedPlantTypes = []models.PlantType{
	models.PlantTypeAuto,
	models.PlantTypeFoto,
}

var allowedPlantSizes = []models.PlantSize{
	models.PlantSizeSmall,
	models.PlantSizeMedium,
	models.PlantSizeLarge,
}

// allowedCultivations includes "" because the API defaults a missing
// cultivation type to indoor.
var allowedCultivations = []models.Cultivation{
	"",
	models.CultivationIndoor,
	models.CultivationOutdoor,
}
