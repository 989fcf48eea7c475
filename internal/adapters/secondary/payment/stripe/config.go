package stripe

type Config struct {
	WebhookSecret    string `envconfig:"WEBHOOK_SECRET" required:"true"`
	ApiKey           string `envconfig:"API_KEY"`
	BaseURL          string `envconfig:"BASE_URL" default:"https://api.stripe.com/v1"`
	ToleranceSeconds int    `envconfig:"TOLERANCE_SECONDS" default:"300"`
	TimeoutSeconds   int    `envconfig:"TIMEOUT_SECONDS" default:"10"`
}
