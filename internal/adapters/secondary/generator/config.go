package generator

type Config struct {
	ApiKey      string  `envconfig:"API_KEY" required:"true"`
	Model       string  `envconfig:"MODEL" default:"gemini-2.0-flash"`
	Temperature float32 `envconfig:"TEMPERATURE" default:"0.8"`
}
