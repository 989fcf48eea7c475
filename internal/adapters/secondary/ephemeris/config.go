package ephemeris

import "strings"

type Config struct {
	BaseURL    string `envconfig:"BASE_URL" required:"true"`
	ApiVersion string `envconfig:"API_VERSION" default:"v1"`
	ApiKey     string `envconfig:"API_KEY"`
	SkipSSL    bool   `envconfig:"SKIP_SSL" default:"false"`
}

// ShouldSkipSSL allows self-signed certs for local instances
func (c *Config) ShouldSkipSSL() bool {
	return c.SkipSSL || strings.HasPrefix(c.BaseURL, "https://localhost")
}
