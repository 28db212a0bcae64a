package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingSetting is matched by every MissingSettingError.
var ErrMissingSetting = errors.New("missing setting")

// MissingSettingError names the setting an operation could not run without.
type MissingSettingError struct {
	Name string
}

func (e *MissingSettingError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Name)
}

func (e *MissingSettingError) Is(target error) bool {
	return target == ErrMissingSetting
}

// Require returns a MissingSettingError when value is blank.
func Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return &MissingSettingError{Name: name}
	}
	return nil
}
