package country

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// AliasIndex maps countries to the lowercase alias strings used for
// free-text detection, with one compiled whole-word pattern per country.
type AliasIndex struct {
	order    []string                   // countries in deterministic build order
	aliases  map[string]map[string]bool // country -> alias set
	patterns map[string]*regexp.Regexp
}

// AliasConfig names the two alias sources. The curated table wins on conflict.
type AliasConfig struct {
	CuratedPath string // alias \t country
	GeoPath     string // iso2 \t alias1,alias2,...
}

// LoadAliases builds the alias index from the curated and geography-derived
// tables. Geography aliases of three characters or fewer are skipped, as is
// any alias the curated table already claims; an alias claimed by two
// different countries keeps its first owner and logs the conflict.
func LoadAliases(cfg AliasConfig, table *Table) (*AliasIndex, error) {
	curated := make(map[string]string)
	lines, err := readLines(cfg.CuratedPath)
	if err != nil {
		return nil, fmt.Errorf("read curated aliases: %w", err)
	}
	for _, line := range lines {
		cols := strings.Split(line, "\t")
		if len(cols) != 2 {
			logrus.Warnf("invalid curated alias line: %q", line)
			continue
		}
		alias := strings.ToLower(strings.TrimSpace(cols[0]))
		name := strings.TrimSpace(cols[1])
		if alias == "" || name == "" {
			continue
		}
		curated[alias] = name
	}

	mapping := make(map[string]string, len(curated))
	for alias, name := range curated {
		mapping[alias] = name
	}

	lines, err = readLines(cfg.GeoPath)
	if err != nil {
		return nil, fmt.Errorf("read geo aliases: %w", err)
	}
	for _, line := range lines {
		cols := strings.Split(line, "\t")
		if len(cols) != 2 {
			logrus.Warnf("invalid geo alias line: %q", line)
			continue
		}
		name := table.FromISO2(cols[0])
		if name == "" {
			logrus.Warnf("iso2 %q has no country; skipping its aliases", strings.TrimSpace(cols[0]))
			continue
		}
		for _, alias := range strings.Split(strings.ToLower(cols[1]), ",") {
			alias = strings.TrimSpace(alias)
			switch {
			case len(alias) <= 3:
				// too short, risks overmatching
			case curated[alias] != "":
				// curated table wins
			case mapping[alias] != "" && mapping[alias] != name:
				logrus.Warnf("duplicate alias %q between %s and %s", alias, name, mapping[alias])
			default:
				mapping[alias] = name
			}
		}
	}

	idx := &AliasIndex{
		aliases:  make(map[string]map[string]bool),
		patterns: make(map[string]*regexp.Regexp),
	}
	for _, c := range table.Countries() {
		idx.addCountry(c.Name)
	}
	for alias, name := range mapping {
		if idx.aliases[name] == nil {
			idx.addCountry(name)
		}
		idx.aliases[name][alias] = true
	}

	for _, name := range idx.order {
		set := idx.aliases[name]
		if len(set) == 0 {
			continue
		}
		parts := make([]string, 0, len(set))
		for alias := range set {
			parts = append(parts, regexp.QuoteMeta(alias))
		}
		// longest alternative first so multi-word aliases win over their prefixes
		sort.Slice(parts, func(i, j int) bool {
			if len(parts[i]) != len(parts[j]) {
				return len(parts[i]) > len(parts[j])
			}
			return parts[i] < parts[j]
		})
		pattern, err := regexp.Compile(`(^|\b)(` + strings.Join(parts, "|") + `)($|\b)`)
		if err != nil {
			return nil, fmt.Errorf("compile alias pattern for %s: %w", name, err)
		}
		idx.patterns[name] = pattern
	}
	return idx, nil
}

func (idx *AliasIndex) addCountry(name string) {
	if _, ok := idx.aliases[name]; ok {
		return
	}
	idx.order = append(idx.order, name)
	idx.aliases[name] = make(map[string]bool)
}

// Has reports whether the country is known to the index.
func (idx *AliasIndex) Has(name string) bool {
	_, ok := idx.aliases[name]
	return ok
}

// NormalizeCountry resolves a raw country string to a canonical country name.
// ISO-2 codes are tried first; otherwise the string must match one of a
// country's aliases exactly. Returns "" when nothing matches.
func (idx *AliasIndex) NormalizeCountry(raw string, table *Table) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return ""
	}
	if name := table.FromISO2(raw); name != "" && idx.Has(name) {
		return name
	}
	for _, name := range idx.order {
		if idx.aliases[name][raw] {
			return name
		}
	}
	return ""
}

// ExtractFreetextCountry counts non-overlapping whole-word alias hits per
// country across all record segments. Countries with zero hits are omitted.
func (idx *AliasIndex) ExtractFreetextCountry(segments []string) map[string]int {
	joined := strings.ToLower(strings.Join(segments, "\n"))
	dist := make(map[string]int)
	for _, name := range idx.order {
		pattern := idx.patterns[name]
		if pattern == nil {
			continue
		}
		if n := len(pattern.FindAllStringIndex(joined, -1)); n > 0 {
			dist[name] = n
		}
	}
	return dist
}
