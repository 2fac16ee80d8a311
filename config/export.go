package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kilianp07/batterycf/pkg/export"
)

// ExportConfig selects where and how results are written.
type ExportConfig struct {
	Format string `json:"format"`
	// Path is the output file; empty writes to stdout.
	Path string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *ExportConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = export.FormatJSON
	}
	c.Format = strings.ToLower(c.Format)
}

// Validate checks the output format.
func (c ExportConfig) Validate() error {
	if !slices.Contains(export.Formats, c.Format) {
		return fmt.Errorf("export.format %q not in %v", c.Format, export.Formats)
	}
	return nil
}
