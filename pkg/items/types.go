// Package items derives item/block identifiers and English display names
// from the entry listing of a Minecraft client archive.
package items

import (
	"io"

	"github.com/charmbracelet/log"
)

// DefaultNamespace is the namespace vanilla content lives under.
const DefaultNamespace = "minecraft"

// Record pairs one identifier with its resolved display name.
type Record struct {
	ID   string // namespace:segment
	Name string // Localized name, or a fallback derived from the segment
}

// LangKind selects the localization key family a category consults.
type LangKind string

const (
	LangItem  LangKind = "item"
	LangBlock LangKind = "block"
)

// Category is one static path-prefix matcher. Categories are scanned in
// slice order; earlier categories have higher priority.
type Category struct {
	Name     string
	Prefixes []string // Directory prefixes, ending in "/"
	Lang     LangKind
}

// Categories returns the three categories for a namespace in priority order:
// item models, recipes, block models.
func Categories(ns string) []Category {
	return []Category{
		{
			Name:     "item models",
			Prefixes: []string{"assets/" + ns + "/models/item/"},
			Lang:     LangItem,
		},
		{
			Name: "recipes",
			// 1.21 renamed the data directory to its singular form
			Prefixes: []string{"data/" + ns + "/recipes/", "data/" + ns + "/recipe/"},
			Lang:     LangBlock,
		},
		{
			Name:     "block models",
			Prefixes: []string{"assets/" + ns + "/models/block/"},
			Lang:     LangBlock,
		},
	}
}

// LangPath returns the path of the English localization resource.
func LangPath(ns string) string {
	return "assets/" + ns + "/lang/en_us.json"
}

// Options configures extraction.
type Options struct {
	Namespace  string      // Identifier namespace (default: "minecraft")
	Extensions []string    // Archive extensions (default: jar.DefaultExtensions)
	Logger     *log.Logger // Progress and diagnostics (default: discarded)
}

func (o Options) withDefaults() Options {
	if o.Namespace == "" {
		o.Namespace = DefaultNamespace
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}
