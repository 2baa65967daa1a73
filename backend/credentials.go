package backend

import (
	"errors"
	"fmt"
	"os"
)

// ErrMissingAPIKey is returned when the credential variable is unset or empty.
var ErrMissingAPIKey = errors.New("API key is not configured on the server")

// APIKeyFromEnv reads the credential from the process environment. It is
// called per request so a rotated key is picked up without a restart.
func APIKeyFromEnv(name string) (string, error) {
	key, ok := os.LookupEnv(name)
	if !ok || key == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingAPIKey, name)
	}
	return key, nil
}
