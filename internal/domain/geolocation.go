package domain

// Colunas do arquivo de geolocalização
const (
	GeolocationZipCodePrefixColumn = "geolocation_zip_code_prefix"
	GeolocationLatColumn           = "geolocation_lat"
	GeolocationLngColumn           = "geolocation_lng"
	GeolocationCityColumn          = "geolocation_city"
	GeolocationStateColumn         = "geolocation_state"
)

type Geolocation struct {
	ZipCodePrefix string  `json:"geolocation_zip_code_prefix"`
	Lat           float64 `json:"geolocation_lat"`
	Lng           float64 `json:"geolocation_lng"`
	City          string  `json:"geolocation_city"`
	State         string  `json:"geolocation_state"`
}
