package runlog

// Options configures one Initialize call. The zero value, plus a RootName,
// writes info-level text records to ./logs.
type Options struct {
	// RootName is the top-level logger namespace, e.g. "spl_flow".
	RootName string `yaml:"root_name" validate:"required"`
	// Adapter is appended to the file name when set, e.g. "openrouter".
	Adapter string `yaml:"adapter" validate:"omitempty,excludesall=/\\"`
	// LogDir is created if absent. Defaults to "logs" under the working directory.
	LogDir string `yaml:"log_dir"`
	// Level is one of debug, info, warning or error (case-insensitive).
	Level string `yaml:"log_level" validate:"oneof=debug info warning error"`
	// Console mirrors every record to stderr.
	Console bool `yaml:"console"`
	// Format is "text" (default) or "json".
	Format string `yaml:"format" validate:"oneof=text json"`

	// Rotation settings passed to lumberjack. Zero keeps lumberjack's defaults.
	MaxSizeMB  int  `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int  `yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays int  `yaml:"max_age_days" validate:"gte=0"`
	Compress   bool `yaml:"compress"`
}
