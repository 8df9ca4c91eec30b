package render

import (
	"errors"
	"io"

	"github.com/marykwonn/Project-Texas/internal/core/model"
	"github.com/marykwonn/Project-Texas/internal/core/palette"
	"github.com/marykwonn/Project-Texas/internal/presentation/formatter"
)

// Config contains configuration for one render run
type Config struct {
	// Sample rows export (.csv, .jsonl, .xlsx)
	InputPath string
	Sheet     string

	// Wells selects well common names; empty keeps every well in the input
	Wells []string

	// Fault geometry, optional
	FaultPath   string
	FaultName   string
	HeaderLines int

	Palette      palette.Palette
	Layout       model.Layout
	OutputFormat string
}

// Validate fills defaults and checks required values
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("input path is required")
	}
	if c.FaultName == "" {
		c.FaultName = "Fault"
	}
	if c.OutputFormat == "" {
		c.OutputFormat = formatter.FormatJSON
	}
	if c.HeaderLines < 0 {
		return errors.New("header lines must not be negative")
	}
	if _, err := formatter.New(c.OutputFormat, io.Discard); err != nil {
		return err
	}
	return nil
}
