package region

import (
	"fmt"
	"strings"
)

// Region is a lowercase Riot platform code, e.g. "euw".
type Region = string

var supported = []Region{"br", "eune", "euw", "kr", "lan", "las", "na", "oce", "ru", "tr"}

var ErrUnsupported = fmt.Errorf("unsupported region")

// Parse lowercases raw and checks it against the supported platforms.
func Parse(raw string) (Region, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	for _, r := range supported {
		if r == value {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupported, raw)
}

func All() []Region {
	return append([]Region(nil), supported...)
}
