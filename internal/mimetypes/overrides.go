package mimetypes

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadOverrides merges extension to MIME type mappings from a TOML file into
// the registry. The file is a flat table of ext = "type" pairs; keys may be
// written with or without the leading dot. Returns the number of mappings
// applied.
//
// The registry is not safe for concurrent mutation, so LoadOverrides must run
// before the server starts accepting requests.
func LoadOverrides(path string) (int, error) {
	overrides := make(map[string]string)
	if _, err := toml.DecodeFile(path, &overrides); err != nil {
		return 0, fmt.Errorf("failed to parse MIME types file %s: %w", path, err)
	}

	applied := 0
	for ext, mimeType := range overrides {
		ext = strings.ToLower(strings.TrimSpace(ext))
		mimeType = strings.TrimSpace(mimeType)
		if ext == "" || ext == "." {
			return applied, fmt.Errorf("invalid extension key %q in %s", ext, path)
		}
		if !strings.Contains(mimeType, "/") {
			return applied, fmt.Errorf("invalid MIME type %q for extension %q in %s", mimeType, ext, path)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		MimeTypes[ext] = mimeType
		applied++
	}
	return applied, nil
}
