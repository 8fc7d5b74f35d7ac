package gui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input   string
		want    Platform
		wantErr bool
	}{
		{"Windows", Windows, false},
		{"MacOS", MacOS, false},
		{"", 0, true},
		{"Linux", 0, true},
		{"windows", 0, true},
		{"MACOS", 0, true},
		{" Windows", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePlatform(tt.input)
			if tt.wantErr {
				var invalid *InvalidPlatformError
				if !errors.As(err, &invalid) {
					t.Fatalf("expected InvalidPlatformError, got %v", err)
				}
				if invalid.Input != tt.input {
					t.Errorf("Input = %q, want %q", invalid.Input, tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParsePlatform(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInvalidPlatformMessage(t *testing.T) {
	err := &InvalidPlatformError{Input: "Linux"}
	want := "Invalid platform. Please enter 'Windows' or 'MacOS'."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestFamilyConsistency(t *testing.T) {
	for _, p := range Platforms() {
		t.Run(p.String(), func(t *testing.T) {
			f, err := NewFactory(p)
			if err != nil {
				t.Fatalf("NewFactory(%v): %v", p, err)
			}
			if f.Platform() != p {
				t.Errorf("factory platform = %v, want %v", f.Platform(), p)
			}

			var buf bytes.Buffer
			f.CreateButton().Render(&buf)
			f.CreateCheckbox().Render(&buf)

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			if len(lines) != 2 {
				t.Fatalf("expected 2 lines, got %q", lines)
			}
			for _, line := range lines {
				if !strings.Contains(line, p.String()) {
					t.Errorf("%q does not mention %v", line, p)
				}
				for _, other := range Platforms() {
					if other != p && strings.Contains(line, other.String()) {
						t.Errorf("%q mentions foreign platform %v", line, other)
					}
				}
			}
		})
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		render func(*bytes.Buffer)
		want   string
	}{
		{"windows button", func(b *bytes.Buffer) { WindowsButton{}.Render(b) }, "Rendering Windows Button\n"},
		{"windows checkbox", func(b *bytes.Buffer) { WindowsCheckbox{}.Render(b) }, "Rendering Windows Checkbox\n"},
		{"macos button", func(b *bytes.Buffer) { MacOSButton{}.Render(b) }, "Rendering MacOS Button\n"},
		{"macos checkbox", func(b *bytes.Buffer) { MacOSCheckbox{}.Render(b) }, "Rendering MacOS Checkbox\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.render(&buf)
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestNewFactoryUnknownPlatform(t *testing.T) {
	f, err := NewFactory(Platform(99))
	if f != nil {
		t.Errorf("expected nil factory, got %T", f)
	}
	var invalid *InvalidPlatformError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidPlatformError, got %v", err)
	}
}

func TestPlatforms(t *testing.T) {
	got := Platforms()
	if len(got) != 2 || got[0] != Windows || got[1] != MacOS {
		t.Errorf("Platforms() = %v, want [Windows MacOS]", got)
	}
	if Platform(99).String() != "Unknown" {
		t.Errorf("unexpected name for unregistered platform: %q", Platform(99).String())
	}
}

type linuxWidget struct{ kind string }

func (w linuxWidget) Render(out io.Writer) { _, _ = fmt.Fprintf(out, "Rendering Linux %s\n", w.kind) }

type linuxFactory struct{}

func (linuxFactory) Platform() Platform       { return Platform(2) }
func (linuxFactory) CreateButton() Button     { return linuxWidget{"Button"} }
func (linuxFactory) CreateCheckbox() Checkbox { return linuxWidget{"Checkbox"} }

func TestRegisteredPlatformIsSelectable(t *testing.T) {
	saved := registry
	t.Cleanup(func() { registry = saved })

	linux := Platform(2)
	registry = append(append([]registration{}, saved...),
		registration{linux, "Linux", func() Factory { return linuxFactory{} }})

	if got := Platforms(); len(got) != 3 || got[2] != linux {
		t.Fatalf("Platforms() = %v, want Linux appended", got)
	}
	if linux.String() != "Linux" {
		t.Errorf("String() = %q, want %q", linux.String(), "Linux")
	}

	p, err := ParsePlatform("Linux")
	if err != nil {
		t.Fatalf("ParsePlatform(Linux): %v", err)
	}
	if p != linux {
		t.Errorf("ParsePlatform(Linux) = %v, want %v", p, linux)
	}

	f, err := NewFactory(p)
	if err != nil {
		t.Fatalf("NewFactory(Linux): %v", err)
	}
	var buf bytes.Buffer
	f.CreateButton().Render(&buf)
	f.CreateCheckbox().Render(&buf)
	if want := "Rendering Linux Button\nRendering Linux Checkbox\n"; buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
