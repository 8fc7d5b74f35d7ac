package gui

import "gui-factory/internal/logger"

// Factory creates a consistent family of widgets.
// Every widget returned by one Factory belongs to Platform().
type Factory interface {
	Platform() Platform
	CreateButton() Button
	CreateCheckbox() Checkbox
}

// WindowsFactory creates Windows widgets.
type WindowsFactory struct{}

func (WindowsFactory) Platform() Platform       { return Windows }
func (WindowsFactory) CreateButton() Button     { return WindowsButton{} }
func (WindowsFactory) CreateCheckbox() Checkbox { return WindowsCheckbox{} }

// MacOSFactory creates MacOS widgets.
type MacOSFactory struct{}

func (MacOSFactory) Platform() Platform       { return MacOS }
func (MacOSFactory) CreateButton() Button     { return MacOSButton{} }
func (MacOSFactory) CreateCheckbox() Checkbox { return MacOSCheckbox{} }

// registration binds a platform to its input name and factory constructor.
type registration struct {
	platform   Platform
	name       string
	newFactory func() Factory
}

// registry is the single source for platform names, parsing, listing and dispatch.
// New platforms only need an entry here.
var registry = []registration{
	{Windows, "Windows", func() Factory { return WindowsFactory{} }},
	{MacOS, "MacOS", func() Factory { return MacOSFactory{} }},
}

func lookup(p Platform) (registration, bool) {
	for _, reg := range registry {
		if reg.platform == p {
			return reg, true
		}
	}
	return registration{}, false
}

// NewFactory returns the factory registered for p.
func NewFactory(p Platform) (Factory, error) {
	reg, ok := lookup(p)
	if !ok {
		logger.Debug("[DEBUG] NewFactory: no factory registered for platform %d\n", int(p))
		return nil, &InvalidPlatformError{Input: p.String()}
	}

	logger.Debug("[DEBUG] NewFactory: selected %s factory\n", reg.name)
	return reg.newFactory(), nil
}
