package whois

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Contact is one parsed WHOIS contact. Keys follow the capture group names
// of the grammar: name, organization, street, city, state, postalcode,
// country, phone, fax, email, handle and a few registry-specific extras.
type Contact map[string]string

// HandleFetcher resolves a NIC contact handle against a registry WHOIS
// server. Implementations are expected to honor the context deadline.
type HandleFetcher interface {
	FetchHandle(ctx context.Context, handle string) ([]string, error)
}

var handleURL = regexp.MustCompile(`^https?://`)

// ExtractContacts finds the four role contacts in the raw segments. Inline
// contact blocks are matched first; handle references then take precedence
// for their role, resolved against NIC blocks found in the record itself or,
// when a fetcher is supplied, against the registry's handle server. A handle
// of "-" or a URL is treated as no reference at all.
func (g *Grammar) ExtractContacts(ctx context.Context, segments []string, fetcher HandleFetcher) map[Role]Contact {
	contacts := make(map[Role]Contact)
	for _, role := range Roles {
		if c := firstContactMatch(g.contacts[role], segments); c != nil {
			contacts[role] = c
		}
	}

	handleContacts := g.parseNICContacts(segments)

	for _, role := range Roles {
		ref := firstContactMatch(g.handleRefs[role], segments)
		if ref == nil {
			continue
		}
		handle := ref["handle"]
		if handle == "" || handle == "-" || handleURL.MatchString(handle) {
			// Blank reference, or a URL false positive (nic.ru).
			continue
		}
		found := false
		for _, hc := range handleContacts {
			if hc["handle"] == handle {
				mergeContact(ref, hc)
				found = true
			}
		}
		if !found && fetcher != nil {
			segments, err := fetcher.FetchHandle(ctx, handle)
			if err != nil {
				logrus.Debugf("handle %q lookup failed: %v", handle, err)
			} else if resolved := g.parseNICContacts(segments); len(resolved) > 0 {
				mergeContact(ref, resolved[0])
			}
		}
		contacts[role] = ref
	}

	for _, c := range contacts {
		g.postProcessContact(c)
	}
	return contacts
}

// firstContactMatch returns the captures of the first pattern that matches
// on the first segment where any pattern matches.
func firstContactMatch(rules []*regexp.Regexp, segments []string) Contact {
	for _, segment := range segments {
		segment = strings.ReplaceAll(segment, "\r", "")
		for _, rule := range rules {
			m := rule.FindStringSubmatch(segment)
			if m == nil {
				continue
			}
			c := make(Contact)
			for i, name := range rule.SubexpNames() {
				if name != "" && i < len(m) {
					c[name] = m[i]
				}
			}
			return c
		}
	}
	return nil
}

// parseNICContacts collects every NIC handle block present in the segments.
func (g *Grammar) parseNICContacts(segments []string) []Contact {
	var out []Contact
	for _, rule := range g.nicContacts {
		for _, segment := range segments {
			segment = strings.ReplaceAll(segment, "\r", "")
			for _, m := range rule.FindAllStringSubmatch(segment, -1) {
				c := make(Contact)
				for i, name := range rule.SubexpNames() {
					if name != "" && i < len(m) {
						c[name] = m[i]
					}
				}
				out = append(out, c)
			}
		}
	}
	return out
}

func mergeContact(dst, src Contact) {
	for k, v := range src {
		dst[k] = v
	}
}

// postProcessContact cleans a raw capture map in place: trims values, folds
// phone extensions, merges numbered street and organization lines, parses
// contact-level dates and repairs a couple of known registry quirks.
func (g *Grammar) postProcessContact(c Contact) {
	for k, v := range c {
		v = strings.TrimSpace(v)
		if v == "" {
			delete(c, k)
			continue
		}
		c[k] = v
	}

	if ext, ok := c["phone_ext"]; ok {
		if phone, ok := c["phone"]; ok {
			c["phone"] = phone + " ext. " + ext
			delete(c, "phone_ext")
		}
	}

	if _, ok := c["street1"]; ok {
		c["street"] = joinNumbered(c, "street", false)
	}
	// Multiple organization lines happen when a registry allows names in
	// several languages (HKDNR).
	if _, ok := c["organization1"]; ok {
		c["organization"] = joinNumbered(c, "organization", true)
	}

	for _, key := range []string{"changedate", "creationdate"} {
		if v, ok := c[key]; ok {
			if t, ok := g.parseDate(v); ok {
				c[key] = t.Format("2006-01-02 15:04:05")
			}
		}
	}

	// Some registries cram postal code and city into the last street line.
	if street, ok := c["street"]; ok {
		if _, havePostal := c["postalcode"]; !havePostal && strings.Contains(street, "\n") {
			lines := splitTrimmed(street)
			last := lines[len(lines)-1]
			if i := strings.Index(last, " "); i > 0 && !strings.Contains(last, ".") {
				postal := last[:i]
				if len(postal) >= 3 && postal[0] >= '0' && postal[0] <= '9' {
					c["postalcode"] = postal
					c["city"] = last[i+1:]
					c["street"] = strings.Join(lines[:len(lines)-1], "\n")
				}
			}
		}
	}

	if c["firstname"] != "" || c["lastname"] != "" {
		var parts []string
		if c["firstname"] != "" {
			parts = append(parts, c["firstname"])
		}
		if c["lastname"] != "" {
			parts = append(parts, c["lastname"])
		}
		c["name"] = strings.Join(parts, " ")
	}

	// "Taiwan, Republic of China" sometimes parses with Taiwan as the city.
	if isROC(c["country"]) && strings.EqualFold(c["city"], "taiwan") {
		c["country"] = c["city"] + ", " + c["country"]
		lines := splitTrimmed(c["street"])
		c["city"] = lines[len(lines)-1]
		c["street"] = strings.Join(lines[:len(lines)-1], "\n")
	}
}

var rocPattern = regexp.MustCompile(`(?i)^R\.?O\.?C\.?$`)

func isROC(country string) bool {
	return rocPattern.MatchString(country) || strings.EqualFold(country, "republic of china")
}

// joinNumbered merges key1..keyN into one newline-joined value, stopping at
// the first missing index.
func joinNumbered(c Contact, key string, skipBlank bool) string {
	var items []string
	for i := 1; ; i++ {
		k := key + strconv.Itoa(i)
		v, ok := c[k]
		if !ok {
			break
		}
		if !skipBlank || strings.TrimSpace(v) != "" {
			items = append(items, v)
		}
		delete(c, k)
	}
	return strings.Join(items, "\n")
}

func splitTrimmed(s string) []string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}
