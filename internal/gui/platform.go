package gui

// Platform identifies one widget family.
type Platform int

const (
	// Windows selects the Windows widget family.
	Windows Platform = iota
	// MacOS selects the MacOS widget family.
	MacOS
)

func (p Platform) String() string {
	if reg, ok := lookup(p); ok {
		return reg.name
	}
	return "Unknown"
}

// InvalidPlatformError reports input that does not name a supported platform.
type InvalidPlatformError struct {
	Input string
}

func (e *InvalidPlatformError) Error() string {
	return "Invalid platform. Please enter 'Windows' or 'MacOS'."
}

// ParsePlatform converts an already trimmed platform name into a Platform.
// The match is exact and case-sensitive.
func ParsePlatform(name string) (Platform, error) {
	for _, reg := range registry {
		if reg.name == name {
			return reg.platform, nil
		}
	}
	return 0, &InvalidPlatformError{Input: name}
}

// Platforms returns every registered platform, in registration order.
func Platforms() []Platform {
	out := make([]Platform, 0, len(registry))
	for _, reg := range registry {
		out = append(out, reg.platform)
	}
	return out
}
