package config

// ServerConfig controls the listener and request limits.
type ServerConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	MaxFormBytes int64  `yaml:"max_form_bytes"`
}

// CookieConfig controls the cookie that remembers the visitor's name.
type CookieConfig struct {
	Name          string `yaml:"name"`
	Domain        string `yaml:"domain"`
	MaxAgeSeconds int    `yaml:"max_age_seconds"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Config represents the cookieserver YAML config file.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Cookie CookieConfig `yaml:"cookie"`
	Log    LogConfig    `yaml:"log"`
}
