package gui

import (
	"fmt"
	"io"
)

// Button is a platform-specific push button.
type Button interface {
	Render(w io.Writer)
}

// Checkbox is a platform-specific check box.
type Checkbox interface {
	Render(w io.Writer)
}

// WindowsButton renders as "Rendering Windows Button".
type WindowsButton struct{}

func (WindowsButton) Render(w io.Writer) { renderWidget(w, Windows, "Button") }

// WindowsCheckbox renders as "Rendering Windows Checkbox".
type WindowsCheckbox struct{}

func (WindowsCheckbox) Render(w io.Writer) { renderWidget(w, Windows, "Checkbox") }

// MacOSButton renders as "Rendering MacOS Button".
type MacOSButton struct{}

func (MacOSButton) Render(w io.Writer) { renderWidget(w, MacOS, "Button") }

// MacOSCheckbox renders as "Rendering MacOS Checkbox".
type MacOSCheckbox struct{}

func (MacOSCheckbox) Render(w io.Writer) { renderWidget(w, MacOS, "Checkbox") }

func renderWidget(w io.Writer, p Platform, kind string) {
	_, _ = fmt.Fprintf(w, "Rendering %s %s\n", p, kind)
}
