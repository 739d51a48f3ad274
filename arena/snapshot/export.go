package snapshot

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"
)

var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// Marshal encodes s as indented JSON.
func Marshal(s Snapshot) ([]byte, error) {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}
	return append(b, '\n'), nil
}

// Unmarshal decodes a snapshot produced by Marshal.
func Unmarshal(b []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: decode: %w", err)
	}
	if s.Blocks == nil {
		s.Blocks = []Block{}
	}
	return s, nil
}

// Export writes s to path on fs, replacing any existing file.
func Export(fs afero.Fs, path string, s Snapshot) error {
	b, err := Marshal(s)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fs, path, b, 0o644); err != nil {
		return fmt.Errorf("snapshot: write %s: %w", path, err)
	}
	return nil
}

// Load reads a snapshot written by Export.
func Load(fs afero.Fs, path string) (Snapshot, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: read %s: %w", path, err)
	}
	return Unmarshal(b)
}
