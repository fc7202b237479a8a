package config

const (
	defaultStateDir    = "~/.local/share/certgen"
	defaultLogDir      = "~/.local/share/certgen/logs"
	defaultDownloadDir = "."
	defaultAPIBaseURL  = "http://127.0.0.1:5000"
	defaultAPITimeout  = 120
	defaultFontSize    = 90
	defaultColor       = "#000000"
	defaultDPI         = 600
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir:    defaultStateDir,
			LogDir:      defaultLogDir,
			DownloadDir: defaultDownloadDir,
		},
		API: API{
			BaseURL:        defaultAPIBaseURL,
			TimeoutSeconds: defaultAPITimeout,
		},
		Render: Render{
			FontSize: defaultFontSize,
			Color:    defaultColor,
			DPI:      defaultDPI,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
