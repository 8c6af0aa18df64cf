package artifact

import "strings"

// SharedLibExtensions are the unversioned shared library extensions.
var SharedLibExtensions = []string{".so", ".dylib", ".dll"}

// HasSimpleSharedLibExtension reports whether name ends in an unversioned
// shared library extension.
func HasSimpleSharedLibExtension(name string) bool {
	for _, ext := range SharedLibExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// HasVersionedSharedLibExtension reports whether name ends in ".so" followed
// by one or more numeric components, as in "libfoo.so.1.2".
func HasVersionedSharedLibExtension(name string) bool {
	i := strings.LastIndex(name, ".so.")
	if i < 0 {
		return false
	}
	return isNumericVersion(name[i+len(".so."):])
}

// HasVersionedDylibExtension reports whether name looks like
// "libfoo.1.2.dylib".
func HasVersionedDylibExtension(name string) bool {
	stem, ok := strings.CutSuffix(name, ".dylib")
	if !ok {
		return false
	}
	i := strings.LastIndex(stem, ".")
	return i > 0 && isDigits(stem[i+1:])
}

// isNumericVersion reports whether v is "N" or "N.N..." with non-empty
// components.
func isNumericVersion(v string) bool {
	if v == "" {
		return false
	}
	for _, part := range strings.Split(v, ".") {
		if !isDigits(part) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
