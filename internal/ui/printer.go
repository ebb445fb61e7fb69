package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrinterOption is a functional option for Printer
type PrinterOption func(*Printer)

// WithColor enables or disables color output
func WithColor(enabled bool) PrinterOption {
	return func(p *Printer) {
		p.colorEnabled = enabled
	}
}

// Printer handles progress output to the terminal
type Printer struct {
	writer       io.Writer
	colorEnabled bool
}

// NewPrinter creates a new Printer
func NewPrinter(writer io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{
		writer:       writer,
		colorEnabled: true,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// PrintProgress prints a progress message
func (p *Printer) PrintProgress(message string) error {
	if p.colorEnabled {
		yellow := color.New(color.FgYellow)
		_, err := yellow.Fprintf(p.writer, "⏳ %s\n", message)
		return err
	}
	_, err := fmt.Fprintf(p.writer, "⏳ %s\n", message)
	return err
}

// PrintSuccess prints a success message
func (p *Printer) PrintSuccess(message string) error {
	if p.colorEnabled {
		green := color.New(color.FgGreen)
		_, err := green.Fprintf(p.writer, "✅ %s\n", message)
		return err
	}
	_, err := fmt.Fprintf(p.writer, "✅ %s\n", message)
	return err
}

// PrintError prints an error message
func (p *Printer) PrintError(message string) error {
	if p.colorEnabled {
		red := color.New(color.FgRed)
		_, err := red.Fprintf(p.writer, "❌ Error: %s\n", message)
		return err
	}
	_, err := fmt.Fprintf(p.writer, "❌ Error: %s\n", message)
	return err
}
