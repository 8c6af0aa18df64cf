package toolchain

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// AutoToolchain is the toolchain name that asks for host detection.
const AutoToolchain = "auto"

// Host describes the environment a toolchain is detected for.
type Host struct {
	GOOS string
	// CC is the C compiler the Go build would invoke.
	CC string
	// CgoEnabled mirrors CGO_ENABLED; empty means unset.
	CgoEnabled string
}

// CurrentHost reads the host description from the runtime and environment.
func CurrentHost() Host {
	return Host{
		GOOS:       runtime.GOOS,
		CC:         os.Getenv("CC"),
		CgoEnabled: os.Getenv("CGO_ENABLED"),
	}
}

// hostRule maps a host shape to a builtin toolchain.
type hostRule struct {
	Match     func(Host) bool
	Toolchain string
}

// hostRules defines the detection order. First match wins.
var hostRules = []hostRule{
	{func(h Host) bool { return h.CgoEnabled == "0" }, "pure"},
	{func(h Host) bool { return h.GOOS == "darwin" }, "darwin-clang"},
	{func(h Host) bool { return h.GOOS == "windows" }, "windows-mingw"},
	{func(h Host) bool { return h.GOOS == "linux" && compilerIs(h.CC, "clang") }, "linux-clang"},
	{func(h Host) bool { return h.GOOS == "linux" }, "linux-gcc"},
}

// compilerIs reports whether cc names the given compiler family, ignoring
// the directory, a target triple prefix and a version suffix.
func compilerIs(cc, family string) bool {
	fields := strings.Fields(cc)
	if len(fields) == 0 {
		return false
	}
	base := strings.TrimSuffix(filepath.Base(fields[0]), ".exe")
	return base == family ||
		strings.HasPrefix(base, family+"-") ||
		strings.HasSuffix(base, "-"+family) ||
		strings.Contains(base, "-"+family+"-")
}

// Detect picks the builtin toolchain for a host.
// Returns the toolchain name and true if detected, empty string and false otherwise.
func Detect(h Host) (string, bool) {
	for _, rule := range hostRules {
		if rule.Match(h) {
			return rule.Toolchain, true
		}
	}
	return "", false
}
