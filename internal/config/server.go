package config

// GetServerAddr returns the listen address for the daemon.
func GetServerAddr() string {
	return GetEnvOrDefault("CODEX_ADDR", ":8080")
}
