package cmd

// Config carries every externally supplied setting as read from the
// environment. Values stay as strings here; the composition root parses
// the numeric and duration fields.
type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	RedisAddr               string
	RedisPassword           string
	SMSGatewayURL           string
	SMSGatewayAPIKey        string
	SMSGatewayTimeout       string
	NotificationDelay       string
	NotificationMaxAttempts string
	SignatureMaxBytes       string
	SignatureAllowedTypes   string
}
