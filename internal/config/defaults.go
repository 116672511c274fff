package config

// DefaultSessionSecret is the placeholder secret. Release builds refuse it.
const DefaultSessionSecret = "secret_key_change_me"

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "8080",
			Mode:         "release",
			TemplatesDir: "./web/templates",
			StaticDir:    "./web/static",
			MaxUploadMB:  10,
		},
		API: APIConfig{
			URL:     "http://127.0.0.1:8000",
			Timeout: "30s",
		},
		Session: SessionConfig{
			Name:   "facilitywatch_session",
			Secret: DefaultSessionSecret,
			MaxAge: 7 * 24 * 3600,
		},
		Likes: LikesConfig{
			Backend:     "memory",
			RedisAddr:   "localhost:6379",
			RedisPrefix: "facilitywatch:liked:",
			MemoryUsers: 10000,
		},
		Feed: FeedConfig{
			RefreshInterval: "30s",
			AdminSort:       "newest",
		},
	}
}
