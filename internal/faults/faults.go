package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfigMissing       = errors.New("config missing")
	ErrConfigInvalid       = errors.New("config invalid")
	ErrInvalidStyle        = errors.New("invalid style")
	ErrNetwork             = errors.New("network error")
	ErrAPI                 = errors.New("api error")
	ErrParse               = errors.New("parse error")
	ErrIO                  = errors.New("io error")
	ErrNotImage            = errors.New("media is not an image")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrInvalidPath         = errors.New("invalid path")
	ErrOS                  = errors.New("os error")
	ErrAborted             = errors.New("aborted")
)

// kinds is ordered so the most specific marker wins when an error wraps several.
var kinds = []struct {
	marker error
	label  string
}{
	{ErrAborted, "aborted"},
	{ErrConfigMissing, "config_missing"},
	{ErrConfigInvalid, "config_invalid"},
	{ErrInvalidStyle, "invalid_style"},
	{ErrUnsupportedPlatform, "unsupported_platform"},
	{ErrInvalidPath, "invalid_path"},
	{ErrOS, "os_error"},
	{ErrNotImage, "not_image"},
	{ErrAPI, "api_error"},
	{ErrNetwork, "network_error"},
	{ErrParse, "parse_error"},
	{ErrIO, "io_error"},
}

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind returns a stable label for the first marker err carries, or "unknown".
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.marker) {
			return k.label
		}
	}
	return "unknown"
}

// IsConfig reports whether err stems from loading or validating the configuration.
func IsConfig(err error) bool {
	return errors.Is(err, ErrConfigMissing) ||
		errors.Is(err, ErrConfigInvalid) ||
		errors.Is(err, ErrInvalidStyle)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "failure"
	}
	return strings.Join(parts, ": ")
}
