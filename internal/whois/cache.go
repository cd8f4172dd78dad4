package whois

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// ResultKind says which extraction strategy produced a cached result.
type ResultKind int

const (
	// ResultEmpty records that a lookup ran but produced nothing usable.
	ResultEmpty ResultKind = iota
	// ResultParsed holds a single country from the structured strategy.
	ResultParsed
	// ResultFreetext holds an alias-mention histogram.
	ResultFreetext
)

// Result is the outcome of one WHOIS country extraction.
type Result struct {
	Kind     ResultKind
	Country  string             // set for ResultParsed
	Freetext map[string]float64 // normalized, set for ResultFreetext
}

// Cache is the append-only TSV store of extraction results, keyed by
// registered domain. Each line is "domain<TAB>status" where status is blank
// (nothing found), "Country|p" (parsed) or "c1|n1;c2|n2" (raw freetext
// mention counts, normalized on read).
type Cache struct {
	path string

	mu      sync.RWMutex
	entries map[string]Result
}

// OpenCache loads the cache file, creating it when absent. Malformed lines
// are logged and skipped so that a partially corrupted cache never blocks
// startup.
func OpenCache(path string) (*Cache, error) {
	f, err := os.OpenFile(filepath.Clean(path), os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open whois cache: %w", err)
	}
	defer f.Close()

	c := &Cache{path: path, entries: make(map[string]Result)}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	n := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		tokens := strings.Split(line, "\t")
		if len(tokens) != 2 {
			logrus.Warnf("invalid whois cache line: %q", line)
			continue
		}
		domain := strings.TrimSpace(tokens[0])
		status := strings.TrimSpace(tokens[1])
		result, ok := parseStatus(status)
		if !ok {
			logrus.Warnf("invalid whois cache line: %q", line)
			continue
		}
		if result.Kind == ResultParsed && result.Country == "??" {
			// Unknown-country marker from older cache generations.
			continue
		}
		c.entries[domain] = result
		n++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read whois cache: %w", err)
	}
	logrus.Infof("loaded %d whois cache entries from %s", n, path)
	return c, nil
}

func parseStatus(status string) (Result, bool) {
	if status == "" {
		return Result{Kind: ResultEmpty}, true
	}
	if strings.HasSuffix(status, "|p") {
		return Result{Kind: ResultParsed, Country: strings.TrimSuffix(status, "|p")}, true
	}
	counts := make(map[string]float64)
	var total float64
	for _, pair := range strings.Split(status, ";") {
		country, n, ok := strings.Cut(pair, "|")
		if !ok {
			return Result{}, false
		}
		v, err := strconv.Atoi(n)
		if err != nil {
			return Result{}, false
		}
		counts[country] = float64(v)
		total += float64(v)
	}
	if total > 0 {
		for country := range counts {
			counts[country] /= total
		}
	}
	return Result{Kind: ResultFreetext, Freetext: counts}, true
}

// Get returns the cached result for a domain.
func (c *Cache) Get(domain string) (Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.entries[domain]
	return r, ok
}

// Len returns the number of cached domains.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Put stores a result and appends it to the cache file. The freetext counts
// argument carries the raw mention counts, which is what the file format
// records; the in-memory entry keeps the normalized form.
func (c *Cache) Put(domain string, result Result, rawCounts map[string]int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var status string
	switch result.Kind {
	case ResultParsed:
		status = result.Country + "|p"
	case ResultFreetext:
		countries := make([]string, 0, len(rawCounts))
		for country := range rawCounts {
			countries = append(countries, country)
		}
		sort.Strings(countries)
		pairs := make([]string, 0, len(countries))
		for _, country := range countries {
			pairs = append(pairs, fmt.Sprintf("%s|%d", country, rawCounts[country]))
		}
		status = strings.Join(pairs, ";")
	}

	c.entries[domain] = result

	f, err := os.OpenFile(c.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("append whois cache: %w", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s\t%s\n", domain, status); err != nil {
		return fmt.Errorf("append whois cache: %w", err)
	}
	return nil
}
