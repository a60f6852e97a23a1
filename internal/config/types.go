package config

import "time"

// Config represents the twmerge configuration document.
type Config struct {
	Version string       `yaml:"version" validate:"required,semver"`
	Log     LogConfig    `yaml:"log"`
	Merge   MergeConfig  `yaml:"merge"`
	Server  ServerConfig `yaml:"server"`
	Audit   AuditConfig  `yaml:"audit"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level         string `yaml:"level" validate:"required,oneof=trace debug info warn error"`
	HumanReadable bool   `yaml:"human_readable"`
}

// MergeConfig tunes the class merger.
type MergeConfig struct {
	CacheSize int `yaml:"cache_size" validate:"min=0,max=1048576"`
}

// ServerConfig holds the HTTP merge service settings.
type ServerConfig struct {
	Addr               string `yaml:"addr" validate:"required,listen_addr"`
	ReadTimeoutSeconds int    `yaml:"read_timeout_seconds" validate:"min=1,max=300"`
	MaxBodyBytes       int64  `yaml:"max_body_bytes" validate:"min=1024,max=10485760"`
}

// ReadTimeout returns the request read timeout as a duration.
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

// AuditConfig selects which files the audit scanner reads.
type AuditConfig struct {
	Extensions []string `yaml:"extensions" validate:"required,min=1,dive,file_ext"`
	Ignore     []string `yaml:"ignore,omitempty" validate:"omitempty,dive,required"`
}

// Default returns the configuration used when no file is supplied. Values
// set in a file override these field by field.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Log: LogConfig{
			Level:         "info",
			HumanReadable: true,
		},
		Merge: MergeConfig{
			CacheSize: 4096,
		},
		Server: ServerConfig{
			Addr:               ":8080",
			ReadTimeoutSeconds: 5,
			MaxBodyBytes:       64 << 10,
		},
		Audit: AuditConfig{
			Extensions: []string{".html", ".templ", ".go", ".razor", ".cshtml", ".jsx", ".tsx", ".vue", ".svelte"},
			Ignore:     []string{"node_modules/", "vendor/", ".git/", "dist/"},
		},
	}
}
