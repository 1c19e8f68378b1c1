package project

import (
	"path/filepath"
	"strings"

	"github.com/complexityscope/complexityscope/internal/walker"
)

// commonJSType is the Dependency.Type value the resolver treats specially:
// only relative CommonJS requires are eligible to resolve to another
// module in the project.
const commonJSType = "CommonJS"

// pathLess orders two module paths the way a project listing does:
// shallower paths (fewer path-separator components) sort first; ties
// break lexicographically on the raw string.
func pathLess(a, b string) bool {
	sep := string(filepath.Separator)

	as := strings.Split(a, sep)
	bs := strings.Split(b, sep)

	if len(as) != len(bs) {
		return len(as) < len(bs)
	}

	return a < b
}

// resolves reports whether dependency d, emitted by the module at from,
// refers to the module at to.
func resolves(d walker.Dependency, from, to string) bool {
	if d.Type == commonJSType && !isRelative(d.Path) {
		return false
	}

	fromAbs, err := filepath.Abs(from)
	if err != nil {
		fromAbs = from
	}

	toAbs, err := filepath.Abs(to)
	if err != nil {
		toAbs = to
	}

	depAbs := filepath.Clean(filepath.Join(filepath.Dir(fromAbs), d.Path))

	if filepath.Ext(d.Path) == "" {
		if filepath.Join(depAbs, "index.js") == toAbs {
			return true
		}

		return depAbs+filepath.Ext(toAbs) == toAbs
	}

	return depAbs == toAbs
}

// isRelative reports whether a CommonJS-style require path is a relative
// reference ("./x" or "../x") as opposed to a bare module specifier.
func isRelative(p string) bool {
	if strings.HasPrefix(p, "./") {
		return true
	}

	const parentPrefixLen = 3

	return len(p) >= parentPrefixLen && p[0] == '.' && p[1] == '.' && p[2] == '/'
}
