package items

import (
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"unicode"

	"github.com/mcitemid/pkg/jar"
	"github.com/spf13/afero"
)

// LangStatus describes what happened to the localization resource.
type LangStatus string

const (
	LangLoaded    LangStatus = "loaded"
	LangMissing   LangStatus = "missing"
	LangMalformed LangStatus = "malformed"
)

// CategoryCount is the number of candidate entries a category matched.
type CategoryCount struct {
	Category string
	Matched  int
	Skipped  int
}

// Summary reports how an archive listing was interpreted.
type Summary struct {
	Entries     int // Total entries in the archive
	Categories  []CategoryCount
	Lang        LangStatus
	LangEntries int // Usable string entries in en_us.json
	Localized   int // Records whose name came from en_us.json
}

// Extractor derives Records from client archives.
type Extractor struct {
	fs   afero.Fs
	opts Options
}

// NewExtractor creates an extractor reading archives from fs.
func NewExtractor(fs afero.Fs, opts Options) *Extractor {
	return &Extractor{
		fs:   fs,
		opts: opts.withDefaults(),
	}
}

// Extract locates the archive in versionDir, scans it and returns the
// records sorted by identifier.
func (e *Extractor) Extract(versionDir string) ([]Record, error) {
	archivePath, err := jar.FindArchive(e.fs, versionDir, e.opts.Extensions)
	if err != nil {
		return nil, err
	}

	e.opts.Logger.Info("Processing archive", "path", archivePath)

	a, err := jar.Open(e.fs, archivePath)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	return e.ExtractArchive(a), nil
}

// ExtractArchive scans an already opened archive.
func (e *Extractor) ExtractArchive(a *jar.Archive) []Record {
	records, _ := e.Scan(a)
	return records
}

// Scan scans an opened archive and returns the records together with a
// summary of what was matched.
func (e *Extractor) Scan(a *jar.Archive) ([]Record, *Summary) {
	ns := e.opts.Namespace
	log := e.opts.Logger

	summary := &Summary{Entries: a.Len()}

	lang, status := e.loadLang(a)
	summary.Lang = status
	summary.LangEntries = len(lang)

	r := newResolver(ns, lang)
	names := a.Names()

	for _, cat := range Categories(ns) {
		count := CategoryCount{Category: cat.Name}

		for _, name := range names {
			prefix, ok := matchPrefix(name, cat.Prefixes)
			if !ok {
				continue
			}

			segment, err := parseSegment(name, prefix)
			if err != nil {
				log.Debug("Skipping entry", "category", cat.Name, "error", err)
				count.Skipped++
				continue
			}

			r.add(cat, segment)
			count.Matched++
		}

		log.Debug("Scanned category", "category", cat.Name,
			"matched", count.Matched, "skipped", count.Skipped)
		summary.Categories = append(summary.Categories, count)
	}

	records := r.records()
	summary.Localized = r.localized()
	return records, summary
}

// loadLang reads en_us.json. Failures only degrade name quality.
func (e *Extractor) loadLang(a *jar.Archive) (map[string]string, LangStatus) {
	log := e.opts.Logger
	langPath := LangPath(e.opts.Namespace)

	if !a.Has(langPath) {
		log.Debug("Localization file not present, using fallback names", "path", langPath)
		return map[string]string{}, LangMissing
	}

	data, err := a.ReadFile(langPath)
	if err != nil {
		log.Warn("Failed to read localization file", "path", langPath, "error", err)
		return map[string]string{}, LangMalformed
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Warn("Failed to parse localization file", "path", langPath, "error", err)
		return map[string]string{}, LangMalformed
	}

	lang := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			lang[k] = s
		}
	}
	return lang, LangLoaded
}

func matchPrefix(name string, prefixes []string) (string, bool) {
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return p, true
		}
	}
	return "", false
}

// parseSegment strips the directory prefix and the trailing extension.
func parseSegment(name, prefix string) (string, error) {
	rest := strings.TrimPrefix(name, prefix)
	if rest == "" || strings.Contains(rest, "/") {
		return "", fmt.Errorf("%w: %s: not a file directly under %s", ErrMalformedEntry, name, prefix)
	}

	ext := path.Ext(rest)
	if ext == "" {
		return "", fmt.Errorf("%w: %s: no extension", ErrMalformedEntry, name)
	}

	segment := strings.TrimSuffix(rest, ext)
	if segment == "" {
		return "", fmt.Errorf("%w: %s: empty name", ErrMalformedEntry, name)
	}
	if strings.ContainsFunc(segment, func(r rune) bool { return r == ':' || unicode.IsSpace(r) }) {
		return "", fmt.Errorf("%w: %s: invalid character in name", ErrMalformedEntry, name)
	}

	return segment, nil
}

type resolvedName struct {
	name      string
	localized bool
}

// resolver is the shared identifier -> name mapping. A localization hit
// always beats a fallback; the first localized name for an identifier is
// kept.
type resolver struct {
	ns    string
	lang  map[string]string
	names map[string]resolvedName
}

func newResolver(ns string, lang map[string]string) *resolver {
	return &resolver{
		ns:    ns,
		lang:  lang,
		names: make(map[string]resolvedName),
	}
}

func (r *resolver) add(cat Category, segment string) {
	id := Identifier(r.ns, segment)

	cur, seen := r.names[id]
	if seen && cur.localized {
		return
	}

	if name, ok := r.lang[langKey(cat.Lang, r.ns, segment)]; ok {
		r.names[id] = resolvedName{name: name, localized: true}
		return
	}

	if !seen {
		r.names[id] = resolvedName{name: FallbackName(segment)}
	}
}

func (r *resolver) localized() int {
	n := 0
	for _, rn := range r.names {
		if rn.localized {
			n++
		}
	}
	return n
}

func (r *resolver) records() []Record {
	records := make([]Record, 0, len(r.names))
	for id, rn := range r.names {
		name := rn.name
		if name == "" {
			if seg, err := Segment(id); err == nil {
				name = FallbackName(seg)
			}
		}
		records = append(records, Record{ID: id, Name: name})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})
	return records
}
