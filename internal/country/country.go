package country

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Country describes one country known to the inference pipeline.
type Country struct {
	Name  string
	ISO2  string
	TLD   string
	Prior float64
}

// Table holds the full country list plus lookup maps derived from it.
type Table struct {
	countries []Country
	byName    map[string]*Country
	byISO2    map[string]string
	byTLD     map[string]string
}

// Config names the resource files a Table is built from.
type Config struct {
	CountriesPath string // iso2 \t name \t tld
	PriorsPath    string // name \t prior (raw, pre-smoothing)
}

// Load reads the country and prior tables and applies prior smoothing.
// Both files are required; a missing file is a fatal configuration error.
func Load(cfg Config) (*Table, error) {
	t := &Table{
		byName: make(map[string]*Country),
		byISO2: make(map[string]string),
		byTLD:  make(map[string]string),
	}

	lines, err := readLines(cfg.CountriesPath)
	if err != nil {
		return nil, fmt.Errorf("read countries: %w", err)
	}
	for _, line := range lines {
		cols := strings.Split(line, "\t")
		if len(cols) < 2 {
			logrus.Warnf("invalid country line: %q", line)
			continue
		}
		c := Country{ISO2: strings.ToLower(strings.TrimSpace(cols[0])), Name: strings.TrimSpace(cols[1])}
		if len(cols) > 2 {
			c.TLD = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(cols[2]), "."))
		}
		if c.Name == "" {
			continue
		}
		t.countries = append(t.countries, c)
	}
	if len(t.countries) == 0 {
		return nil, errors.New("country table is empty")
	}

	priors, err := readPriors(cfg.PriorsPath)
	if err != nil {
		return nil, fmt.Errorf("read priors: %w", err)
	}

	// Normalize raw priors to sum to 1, then reserve 1% spread evenly
	// across all known countries and renormalize.
	var total float64
	for _, p := range priors {
		total += p
	}
	if total > 0 {
		for name := range priors {
			priors[name] /= total
		}
	}
	k := 0.01 / float64(len(t.countries))
	for i := range t.countries {
		c := &t.countries[i]
		c.Prior = (priors[c.Name] + k) / 1.01
		t.byName[c.Name] = c
		if c.ISO2 != "" {
			t.byISO2[c.ISO2] = c.Name
		}
		if c.TLD != "" {
			t.byTLD[c.TLD] = c.Name
		}
	}
	// Some older registration data uses 'uk' where ISO-3166 says 'gb'.
	t.byISO2["uk"] = "United Kingdom"

	return t, nil
}

// Countries returns the country list in file order.
func (t *Table) Countries() []Country {
	return t.countries
}

// Len returns the number of known countries.
func (t *Table) Len() int {
	return len(t.countries)
}

// Priors returns a fresh name -> smoothed prior map.
func (t *Table) Priors() map[string]float64 {
	out := make(map[string]float64, len(t.countries))
	for _, c := range t.countries {
		out[c.Name] = c.Prior
	}
	return out
}

// FromISO2 maps a two-letter code to a country name, or "".
func (t *Table) FromISO2(iso2 string) string {
	return t.byISO2[strings.ToLower(strings.TrimSpace(iso2))]
}

// FromTLD maps a country-code TLD to a country name, or "".
func (t *Table) FromTLD(tld string) string {
	return t.byTLD[strings.ToLower(strings.TrimSpace(tld))]
}

func readPriors(path string) (map[string]float64, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	priors := make(map[string]float64)
	for _, line := range lines {
		cols := strings.Split(line, "\t")
		if len(cols) != 2 {
			logrus.Warnf("invalid prior line: %q", line)
			continue
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(cols[1]), 64)
		if err != nil {
			logrus.Warnf("invalid prior value: %q", line)
			continue
		}
		priors[strings.TrimSpace(cols[0])] = p
	}
	return priors, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
