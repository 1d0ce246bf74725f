package configs

// Mail holds configuration for outgoing notification email sent through
// the Resend API.
type Mail struct {
	// APIKey authenticates against Resend. Email sending fails without it.
	APIKey string `env:"API_KEY"`
	// From is the sender shown to customers.
	From string `env:"FROM" envDefault:"Naplata <obavestenja@localhost>"`
}
