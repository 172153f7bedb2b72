package faults

import (
	"errors"
	"strings"
	"testing"
)

func TestWrap_TagsMarkerAndKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrNetwork, "apod", "fetch", "", cause)

	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("errors.Is(err, ErrNetwork) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(err, cause) = false, want true")
	}
	want := "network error: apod: fetch: connection refused"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap_NilMarkerDefaultsToIO(t *testing.T) {
	err := Wrap(nil, "", "", "", nil)
	if !errors.Is(err, ErrIO) {
		t.Fatalf("errors.Is(err, ErrIO) = false, want true")
	}
	if !strings.Contains(err.Error(), "failure") {
		t.Fatalf("Error() = %q, want it to mention failure", err.Error())
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{errors.New("plain"), "unknown"},
		{Wrap(ErrAPI, "apod", "status", "403", nil), "api_error"},
		{Wrap(ErrNotImage, "app", "media", "video", nil), "not_image"},
		{Wrap(ErrAborted, "app", "fallback", "", Wrap(ErrOS, "wallpaper", "set", "", nil)), "aborted"},
	}
	for _, tt := range tests {
		if got := Kind(tt.err); got != tt.want {
			t.Fatalf("Kind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestIsConfig(t *testing.T) {
	if !IsConfig(Wrap(ErrInvalidStyle, "config", "validate", "", nil)) {
		t.Fatalf("IsConfig(invalid style) = false, want true")
	}
	if IsConfig(Wrap(ErrNetwork, "apod", "fetch", "", nil)) {
		t.Fatalf("IsConfig(network) = true, want false")
	}
}
