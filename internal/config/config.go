package config

// Config holds the web client configuration
type Config struct {
	Server  ServerConfig  `toml:"server"`
	API     APIConfig     `toml:"api"`
	Session SessionConfig `toml:"session"`
	Likes   LikesConfig   `toml:"likes"`
	Feed    FeedConfig    `toml:"feed"`
}

type ServerConfig struct {
	Port         string `toml:"port"`
	Mode         string `toml:"mode"` // debug, release, test
	TemplatesDir string `toml:"templates_dir"`
	StaticDir    string `toml:"static_dir"`
	MaxUploadMB  int    `toml:"max_upload_mb"`
}

type APIConfig struct {
	URL     string `toml:"url"`
	Timeout string `toml:"timeout"`
}

type SessionConfig struct {
	Name   string `toml:"name"`
	Secret string `toml:"secret"`
	MaxAge int    `toml:"max_age"` // seconds
	Secure bool   `toml:"secure"`
}

type LikesConfig struct {
	Backend     string `toml:"backend"` // memory, postgres, redis
	DatabaseURL string `toml:"database_url"`
	RedisAddr   string `toml:"redis_addr"`
	RedisDB     int    `toml:"redis_db"`
	RedisPrefix string `toml:"redis_prefix"`
	MemoryUsers int    `toml:"memory_users"`
}

type FeedConfig struct {
	RefreshInterval string `toml:"refresh_interval"`
	AdminSort       string `toml:"admin_sort"`
}
