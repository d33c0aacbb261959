// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package ux renders terminal output for the search CLI.
//
// A Printer styles its output with lipgloss when it writes to a terminal
// and falls back to plain, machine-readable text otherwise, so piped
// reports stay byte-for-byte stable.
package ux

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Aleutian color palette.
var (
	ColorTealBright  = lipgloss.Color("#2CD7C7")
	ColorTealPrimary = lipgloss.Color("#20B9B4")
	ColorTealDeep    = lipgloss.Color("#16858E")
	ColorSlate       = lipgloss.Color("#2C4A54")
	ColorWarning     = lipgloss.Color("#F4D03F")
	ColorError       = lipgloss.Color("#E74C3C")
)

// Styles provides pre-configured lipgloss styles.
var Styles = struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorTealBright),
	Header:    lipgloss.NewStyle().Bold(true).Foreground(ColorTealPrimary),
	Muted:     lipgloss.NewStyle().Foreground(ColorSlate),
	Success:   lipgloss.NewStyle().Foreground(ColorTealBright),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Highlight: lipgloss.NewStyle().Foreground(ColorTealBright).Bold(true),
}

// Icon is a status marker.
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
)

// plainPrefix is the machine-mode replacement for an icon.
func (i Icon) plainPrefix() string {
	switch i {
	case IconSuccess:
		return "OK:"
	case IconWarning:
		return "WARN:"
	case IconError:
		return "ERROR:"
	default:
		return string(i)
	}
}

// IsTerminal reports whether w is a terminal (including Cygwin ptys).
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer writes styled or plain lines to a writer.
//
// Thread Safety: NOT safe for concurrent use.
type Printer struct {
	w      io.Writer
	styled bool
}

// NewPrinter returns a Printer that styles output only if w is a terminal
// and NO_COLOR is unset.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styled: IsTerminal(w) && os.Getenv("NO_COLOR") == ""}
}

// NewPlainPrinter returns a Printer that never styles output.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

func (p *Printer) render(style lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return style.Render(text)
}

// Title prints a title line. Plain mode omits it.
func (p *Printer) Title(text string) {
	if !p.styled {
		return
	}
	fmt.Fprintln(p.w, Styles.Title.Render(text))
}

// Header prints a table header line.
func (p *Printer) Header(text string) {
	fmt.Fprintln(p.w, p.render(Styles.Header, text))
}

// Line prints text unchanged.
func (p *Printer) Line(text string) {
	fmt.Fprintln(p.w, text)
}

// Highlight prints text in the highlight style.
func (p *Printer) Highlight(text string) {
	fmt.Fprintln(p.w, p.render(Styles.Highlight, text))
}

// Muted prints secondary text.
func (p *Printer) Muted(text string) {
	fmt.Fprintln(p.w, p.render(Styles.Muted, text))
}

// Status prints text behind a status icon.
func (p *Printer) Status(icon Icon, text string) {
	if !p.styled {
		fmt.Fprintf(p.w, "%s %s\n", icon.plainPrefix(), text)
		return
	}
	style := Styles.Success
	switch icon {
	case IconWarning:
		style = Styles.Warning
	case IconError:
		style = Styles.Error
	}
	fmt.Fprintf(p.w, "%s %s\n", style.Render(string(icon)), style.Render(text))
}

// Success prints a success status line.
func (p *Printer) Success(text string) { p.Status(IconSuccess, text) }

// Warning prints a warning status line.
func (p *Printer) Warning(text string) { p.Status(IconWarning, text) }

// Error prints an error status line.
func (p *Printer) Error(text string) { p.Status(IconError, text) }
