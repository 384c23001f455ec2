package filename

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// versionMarker matches a trailing ver_<digits> token on a base name.
// Only a trailing match counts; an embedded ver_<n> is part of the name.
var versionMarker = regexp.MustCompile(`ver_(\d+)$`)

// Split splits a filename into its base name and extension. The extension
// is the last dot-delimited suffix including the leading dot, or the empty
// string when the name has no dot.
func Split(name string) (base, ext string) {
	ext = filepath.Ext(name)
	base = strings.TrimSuffix(name, ext)
	return base, ext
}

// Version returns the version number encoded in a trailing ver_<n> marker
// and the prefix before the marker. ok is false when the base name carries
// no trailing marker.
func Version(base string) (prefix string, version int, ok bool) {
	match := versionMarker.FindStringSubmatchIndex(base)
	if match == nil {
		return "", 0, false
	}

	n, err := strconv.Atoi(base[match[2]:match[3]])
	if err != nil {
		// Digits too large for int; treat as unversioned
		return "", 0, false
	}

	return base[:match[0]], n, true
}

// BasePrefix strips the version marker and extension from a name, yielding
// the prefix shared by every version in the same lineage.
func BasePrefix(name string) string {
	base, _ := Split(name)
	if prefix, _, ok := Version(base); ok {
		return strings.TrimSuffix(prefix, "_")
	}
	return base
}

// NextVersionedName bumps a filename to its next version. A name whose base
// ends with ver_<n> becomes ver_<n+1>; any other name gets _ver_1 appended
// before the extension.
func NextVersionedName(name string) string {
	base, ext := Split(name)
	if prefix, version, ok := Version(base); ok {
		return fmt.Sprintf("%sver_%d%s", prefix, version+1, ext)
	}
	return base + "_ver_1" + ext
}
