package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"gui-factory/internal/gui"
	"gui-factory/internal/logger"
)

const prompt = "Choose platform (Windows/MacOS):"

// Run prompts for a platform on out, reads one line from in and renders
// the widget family of the chosen platform.
// Invalid input and unexpected failures are reported on out; Run never fails.
func Run(in io.Reader, out io.Writer) {
	defer func() {
		if r := recover(); r != nil {
			report(out, fmt.Errorf("%v", r))
		}
	}()

	if err := run(in, out); err != nil {
		report(out, err)
	}
}

func run(in io.Reader, out io.Writer) error {
	_, _ = fmt.Fprintln(out, prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read platform: %w", err)
	}
	name := strings.TrimSpace(line)
	logger.Debug("[DEBUG] Run: read platform %q\n", name)

	platform, err := gui.ParsePlatform(name)
	if err != nil {
		return err
	}

	factory, err := gui.NewFactory(platform)
	if err != nil {
		return err
	}

	button := factory.CreateButton()
	checkbox := factory.CreateCheckbox()

	_, _ = fmt.Fprintln(out, "Creating GUI elements:")
	button.Render(out)
	checkbox.Render(out)

	logger.Debug("[DEBUG] Run: rendered %s widgets\n", platform)
	return nil
}

// report writes the user-facing line for err.
func report(out io.Writer, err error) {
	var invalid *gui.InvalidPlatformError
	if errors.As(err, &invalid) {
		logger.Debug("[DEBUG] Run: rejected platform %q\n", invalid.Input)
		logger.ErrorTo(out, "Error: %s\n", err)
		return
	}

	logger.Error("[ERROR] Run: %v\n", err)
	logger.ErrorTo(out, "An unexpected error occurred: %s\n", err)
}
