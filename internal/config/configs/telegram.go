package configs

import "time"

// Telegram configures the chat bot. The bot is disabled when Token is
// empty; the token is never compiled into the binary.
type Telegram struct {
	Token string `env:"TOKEN"`
	// DialogueTimeout is how long the bot waits for the answer to a
	// question before the chat falls back to idle.
	DialogueTimeout time.Duration `env:"DIALOGUE_TIMEOUT" envDefault:"5m"`
	// PollTimeout is the long-polling timeout in seconds.
	PollTimeout int  `env:"POLL_TIMEOUT" envDefault:"60"`
	Debug       bool `env:"DEBUG" envDefault:"false"`
}

// Enabled reports whether a bot token was supplied.
func (c Telegram) Enabled() bool {
	return c.Token != ""
}
