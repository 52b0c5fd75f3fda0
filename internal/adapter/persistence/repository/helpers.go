package repository

import "os"

// tableNameFromEnv resolves a repository's table name, preferring the env var
// so local and deployed environments can point at different tables.
func tableNameFromEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
