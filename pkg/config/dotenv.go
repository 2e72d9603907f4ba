package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadEnvFile parses a .env file into a map. Blank lines and
// lines starting with # are skipped; surrounding quotes are
// removed from values.
func ReadEnvFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open env file %s: %w", path, err)
	}
	defer file.Close()

	vars := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		vars[key] = strings.Trim(strings.TrimSpace(value), `"'`)
	}
	return vars, scanner.Err()
}

// Lookup returns a lookup function for ApplyEnv that consults
// the process environment first and then vars.
func Lookup(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}
}
