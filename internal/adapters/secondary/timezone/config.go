package timezone

type Config struct {
	BaseURL        string `envconfig:"BASE_URL" default:"https://timeapi.io/api/timezone/coordinate"`
	DefaultZone    string `envconfig:"DEFAULT_ZONE" default:"America/Sao_Paulo"`
	TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"10"`
}
