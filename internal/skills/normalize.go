// Package skills normalizes skill identifiers and parses user skill input.
// Normalization keeps the engine's matching stable across the common spelling
// variants of tool and framework names; free-text extraction is out of scope.
package skills

import "strings"

// aliases maps common variants to the catalog's canonical identifiers.
var aliases = map[string]string{
	"js":          "javascript",
	"java-script": "javascript",
	"ts":          "typescript",
	"react.js":    "react",
	"reactjs":     "react",
	"node":        "nodejs",
	"node.js":     "nodejs",
	"node-js":     "nodejs",
	"vue":         "vuejs",
	"vue.js":      "vuejs",
	"postgres":    "postgresql",
	"mongo":       "mongodb",
	"k8s":         "kubernetes",
	"sklearn":     "scikit-learn",
	"ml":          "machine-learning",
	"py":          "python",
	"c#":          "csharp",
	"c-sharp":     "csharp",
	"c++":         "cpp",
	"golang":      "go",
	"power-bi":    "powerbi",
	"html5":       "html",
	"css3":        "css",
	"cicd":        "ci-cd",
}

// Normalize lowercases a skill name, converts spaces to hyphens, and resolves
// known aliases. Unknown identifiers pass through unchanged apart from the
// casing and spacing rules.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.Join(strings.Fields(n), "-")
	if canonical, ok := aliases[n]; ok {
		return canonical
	}
	return n
}

// NormalizeAll normalizes a list of names, dropping empties and duplicates
// while keeping first-seen order.
func NormalizeAll(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		n := Normalize(name)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
