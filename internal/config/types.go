package config

// Config is the runtime configuration of the CLI. Command-line flags take
// precedence over every field.
type Config struct {
	DataDir  string // directory holding matches.csv and deliveries.csv
	DBPath   string // SQLite snapshot written by `import`
	LogLevel string
	Analyze  AnalyzeConfig
}

// AnalyzeConfig configures the LLM narrative command.
type AnalyzeConfig struct {
	APIKey string
	Model  string
}
