package kafka

import (
	"strings"

	"github.com/IBM/sarama"
)

// Config for Kafka producer/consumer
type Config struct {
	Brokers          string `envconfig:"BROKERS"`           // "broker1:9092,broker2:9092"
	Topic            string `envconfig:"TOPIC"`             // report job topic
	ConsumerGroup    string `envconfig:"CONSUMER_GROUP"`    // consumer only
	SecurityProtocol string `envconfig:"SECURITY_PROTOCOL"` // "SASL_SSL", "PLAINTEXT"
	SASLMechanism    string `envconfig:"SASL_MECHANISM"`    // "PLAIN", "SCRAM-SHA-256"
	SASLUsername     string `envconfig:"SASL_USERNAME"`
	SASLPassword     string `envconfig:"SASL_PASSWORD"`
}

// GetBrokers splits the broker list
func (c *Config) GetBrokers() []string {
	if c.Brokers == "" {
		return []string{"localhost:9092"}
	}
	return strings.Split(c.Brokers, ",")
}

// applySecurity configures SASL/TLS on a sarama config
func (c *Config) applySecurity(config *sarama.Config) {
	if c.SecurityProtocol != "SASL_SSL" && c.SecurityProtocol != "SASL_PLAINTEXT" {
		return
	}

	config.Net.SASL.Enable = true
	config.Net.SASL.Mechanism = sarama.SASLTypePlaintext
	if c.SASLMechanism == "SCRAM-SHA-256" {
		config.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
	}
	config.Net.SASL.User = c.SASLUsername
	config.Net.SASL.Password = c.SASLPassword

	// TLS only for SASL_SSL
	if c.SecurityProtocol == "SASL_SSL" {
		config.Net.TLS.Enable = true
	}
}
