package configs

// SMS holds configuration for the optional SMS gateway. Leaving GatewayURL
// empty disables SMS delivery; reminders then go out as email only.
type SMS struct {
	GatewayURL string `env:"GATEWAY_URL"`
	APIKey     string `env:"API_KEY"`
	// Sender is the alphanumeric originator shown on the customer's phone.
	Sender string `env:"SENDER" envDefault:"Naplata"`
}
