package config

const (
	defaultDataDir              = "~/.local/share/mailbox"
	defaultLogDir               = "~/.local/share/mailbox/logs"
	defaultAPIBind              = "127.0.0.1:7519"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
	defaultHistoryRetentionDays = 30
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		Mailbox: Mailbox{
			MaxItems: 0,
		},
		History: History{
			Enabled:       true,
			RetentionDays: defaultHistoryRetentionDays,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
