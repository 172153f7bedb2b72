package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/five82/apodwall/internal/apod"
	"github.com/five82/apodwall/internal/faults"
)

// FileName is the artifact name inside the data directory.
const FileName = "apod.json"

// Artifact is the subset of an APOD record kept for the user.
type Artifact struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Date        string `json:"date"`
	Copyright   string `json:"copyright"`
	MediaType   string `json:"media_type"`
	URL         string `json:"url"`
}

// FromRecord selects the persisted fields from record.
func FromRecord(record apod.Record) Artifact {
	return Artifact{
		Title:       record.Title,
		Explanation: record.Explanation,
		Date:        record.Date,
		Copyright:   record.Copyright,
		MediaType:   record.MediaType,
		URL:         record.URL,
	}
}

// Write stores the artifact for record at destination as indented JSON. The
// file is replaced atomically.
func Write(record apod.Record, destination string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(FromRecord(record)); err != nil {
		return faults.Wrap(faults.ErrIO, "metadata", "marshal", "", err)
	}

	dir := filepath.Dir(destination)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return faults.Wrap(faults.ErrIO, "metadata", "create dir", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".apod-*.json")
	if err != nil {
		return faults.Wrap(faults.ErrIO, "metadata", "create temp file", dir, err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return faults.Wrap(faults.ErrIO, "metadata", "write", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return faults.Wrap(faults.ErrIO, "metadata", "close", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), destination); err != nil {
		_ = os.Remove(tmp.Name())
		return faults.Wrap(faults.ErrIO, "metadata", "rename", destination, err)
	}
	return nil
}

// ErrNoArtifact reports that no run has written metadata yet.
var ErrNoArtifact = errors.New("no metadata artifact")

// Read loads an artifact written by Write.
func Read(path string) (Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Artifact{}, fmt.Errorf("%w at %s", ErrNoArtifact, path)
		}
		return Artifact{}, faults.Wrap(faults.ErrIO, "metadata", "read", path, err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return Artifact{}, faults.Wrap(faults.ErrParse, "metadata", "decode", path, err)
	}
	return a, nil
}
