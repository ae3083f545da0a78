package common

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// ErrMissingEnvironmentVariable indicates that a required environment
// variable is unset or blank.
var ErrMissingEnvironmentVariable = errors.New("missing environment variable")

// ErrNotPointer indicates that SetConfigFromEnvVars received a value
// that is not a pointer to a struct.
var ErrNotPointer = errors.New("config must be a pointer to a struct")

// RequireEnv returns the value of key or an error when the variable is
// unset or blank.
func RequireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingEnvironmentVariable, key)
	}

	return value, nil
}

// GetenvOrDefault returns the value of key, or defaultValue when the
// variable is unset, empty, or whitespace-only.
func GetenvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}

	return value
}

// GetenvBoolOrDefault returns the value of key parsed as a bool, or
// defaultValue when the variable is unset or unparsable.
func GetenvBoolOrDefault(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return defaultValue
	}

	return value
}

// GetenvIntOrDefault returns the value of key parsed as an int64, or
// defaultValue when the variable is unset or unparsable.
func GetenvIntOrDefault(key string, defaultValue int64) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(os.Getenv(key)), 10, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

// SetConfigFromEnvVars fills the exported fields of a struct from the
// environment variables named by each field's `env` tag. Supported
// field kinds are string, bool, and int64. Fields without an `env` tag
// or whose variable is unset keep their zero value.
func SetConfigFromEnvVars(config any) error {
	value := reflect.ValueOf(config)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return ErrNotPointer
	}

	structValue := value.Elem()
	structType := structValue.Type()

	for i := 0; i < structType.NumField(); i++ {
		field := structValue.Field(i)

		key := structType.Field(i).Tag.Get("env")
		if key == "" || !field.CanSet() {
			continue
		}

		raw, ok := os.LookupEnv(key)
		if !ok {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(raw)
		case reflect.Bool:
			if parsed, err := strconv.ParseBool(strings.TrimSpace(raw)); err == nil {
				field.SetBool(parsed)
			}
		case reflect.Int64:
			if parsed, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
				field.SetInt(parsed)
			}
		default:
		}
	}

	return nil
}
