package email

// Config holds mail delivery configuration. The Postmark tokens are optional:
// when absent the service falls back to the filesystem dev sender, mirroring
// a development setup where no real mail leaves the machine.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"no-reply@localhost"`
	SupportEmail         string `env:"SUPPORT_EMAIL" envDefault:"support@localhost"`
	DevMailDir           string `env:"DEV_MAIL_DIR" envDefault:"./tmp/mail"`
}
