// Package ansi provides ANSI escape code constants and helpers for terminal
// output. All colored terminal output should reference these constants to
// avoid duplication.
package ansi

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Paint wraps s in the given SGR code when enabled, otherwise returns s
// unchanged. Callers thread their color setting through enabled so plain
// pipes never see escape codes.
func Paint(enabled bool, code, s string) string {
	if !enabled {
		return s
	}
	return code + s + Reset
}
