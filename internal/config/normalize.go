package config

import (
	"strings"
)

// normalize expands paths and canonicalizes user-supplied values so the rest
// of the program never sees raw config input.
func (c *Config) normalize() error {
	if strings.TrimSpace(c.Paths.CacheDir) != "" {
		expanded, err := expandPath(c.Paths.CacheDir)
		if err != nil {
			return err
		}
		c.Paths.CacheDir = expanded
	}

	c.Compare.OnParseError = strings.ToLower(strings.TrimSpace(c.Compare.OnParseError))
	if c.Compare.OnParseError == "" {
		c.Compare.OnParseError = defaultOnParseError
	}

	exts := make([]string, 0, len(c.Compare.CodeExtensions))
	for _, ext := range c.Compare.CodeExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	c.Compare.CodeExtensions = exts

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	return nil
}
