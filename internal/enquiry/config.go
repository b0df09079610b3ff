package enquiry

// Config holds enquiry intake configuration.
type Config struct {
	Recipient    string `env:"ENQUIRY_RECIPIENT" envDefault:"ecoexpertservices@gmail.com"`
	Path         string `env:"ENQUIRY_PATH" envDefault:"/api/enquiry"`
	Timezone     string `env:"ENQUIRY_TIMEZONE" envDefault:"Europe/London"`
	Locale       string `env:"ENQUIRY_LOCALE" envDefault:"en-GB"`
	MaxBodyBytes int64  `env:"MAX_BODY_BYTES" envDefault:"65536"`
}
