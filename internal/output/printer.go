package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/monify-labs/sysfetch/internal/config"
	"github.com/monify-labs/sysfetch/internal/display"
	"github.com/monify-labs/sysfetch/internal/report"
	"github.com/monify-labs/sysfetch/pkg/models"
)

// Printer is the interface for writing a collected report
type Printer interface {
	// Print writes the report to the underlying writer
	Print(r *models.Report) error
}

// LogoPrinter writes the info lines beside the distribution logo
type LogoPrinter struct {
	w       io.Writer
	display config.DisplayConfig
	padding int
}

// NewLogoPrinter creates a terminal printer
func NewLogoPrinter(w io.Writer, d config.DisplayConfig, padding int) *LogoPrinter {
	return &LogoPrinter{w: w, display: d, padding: padding}
}

func (p *LogoPrinter) Print(r *models.Report) error {
	if r == nil {
		return nil
	}
	lines := report.Lines(r, p.display)
	return display.Render(p.w, display.LogoLines(r.DistroID), lines, r.DistroID, p.padding)
}

// JSONPrinter writes the raw report as indented JSON
type JSONPrinter struct {
	w io.Writer
}

// NewJSONPrinter creates a JSON printer
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{w: w}
}

func (p *JSONPrinter) Print(r *models.Report) error {
	if r == nil {
		return nil
	}

	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
