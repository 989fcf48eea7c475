package geocoder

type Config struct {
	BaseURL        string `envconfig:"BASE_URL" default:"https://api.opencagedata.com/geocode/v1/json"`
	ApiKey         string `envconfig:"API_KEY" required:"true"`
	TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"10"`
}
