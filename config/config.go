package config

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL          string
	RedisAddress   string
	BearerToken    string
	BillingDueDay  int
	AllowedOrigins []string
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}

// GetBillingDueDay returns the day of the month on which monthly fees fall due.
func (c *AppConfig) GetBillingDueDay() int {
	return c.BillingDueDay
}
