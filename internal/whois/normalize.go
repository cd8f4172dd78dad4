package whois

import (
	"strings"
	"unicode"
)

// NameOptions tunes NormalizeName for the kind of value being cleaned.
type NameOptions struct {
	// AbbreviationThreshold is the minimum word length before a word is
	// recapitalized; shorter words are assumed to be abbreviations.
	AbbreviationThreshold int
	// LengthThreshold is the minimum line length before an all-upper or
	// all-lower line is considered miscapitalized.
	LengthThreshold int
	// LowercaseDomains folds words that look like domain names to lowercase.
	LowercaseDomains bool
	// IgnoreNIC forces registrar names containing "NIC" to uppercase.
	IgnoreNIC bool
}

// NormalizeName repairs the capitalization of shouted (all-upper) or
// mumbled (all-lower) lines, leaving abbreviations and domain-like words
// alone. Lines that mix case are assumed to be deliberate and kept as-is.
func NormalizeName(value string, opts NameOptions) string {
	var out []string
	for _, line := range strings.Split(value, "\n") {
		line = strings.Trim(line, ",")
		if (isUpper(line) || isLower(line)) && len(line) >= opts.LengthThreshold {
			if opts.IgnoreNIC && strings.Contains(strings.ToLower(line), "nic") {
				line = strings.ToUpper(line)
			} else {
				words := strings.Fields(line)
				for i, word := range words {
					switch {
					case len(word) >= opts.AbbreviationThreshold && !strings.Contains(word, "."):
						words[i] = capitalize(word)
					case opts.LowercaseDomains && strings.Contains(word, ".") &&
						!strings.HasSuffix(word, ".") && !strings.HasPrefix(word, "."):
						words[i] = strings.ToLower(word)
					}
				}
				line = strings.Join(words, " ")
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// NormalizeRecord cleans the extracted fields and contacts in place:
// nameservers, emails and WHOIS servers are lowercased, registrar and
// status names recapitalized, and contact names, streets and places run
// through NormalizeName. Organization-less contacts whose name or street
// carries a legal suffix (Ltd, GmbH, S.A., ...) get the line moved to the
// organization field.
func (g *Grammar) NormalizeRecord(fields Fields, contacts map[Role]Contact) {
	for _, key := range []string{"nameservers", "emails", "whois_server"} {
		for i, v := range fields[key] {
			fields[key][i] = strings.ToLower(v)
		}
	}
	for i, v := range fields["registrar"] {
		fields["registrar"][i] = NormalizeName(v, NameOptions{AbbreviationThreshold: 4, LengthThreshold: 1, LowercaseDomains: true, IgnoreNIC: true})
	}
	for i, v := range fields["status"] {
		fields["status"][i] = NormalizeName(v, NameOptions{AbbreviationThreshold: 3, LengthThreshold: 1, LowercaseDomains: true})
	}

	for _, c := range contacts {
		g.normalizeContact(c)
	}
}

func (g *Grammar) normalizeContact(c Contact) {
	if v, ok := c["email"]; ok {
		c["email"] = strings.ToLower(v)
	}
	for _, key := range []string{"name", "street"} {
		if v, ok := c[key]; ok {
			c[key] = NormalizeName(v, NameOptions{AbbreviationThreshold: 3, LengthThreshold: 8, LowercaseDomains: true})
		}
	}
	for _, key := range []string{"city", "organization", "state", "country"} {
		if v, ok := c[key]; ok {
			c[key] = NormalizeName(v, NameOptions{AbbreviationThreshold: 3, LengthThreshold: 3, LowercaseDomains: true})
		}
	}

	if _, hasOrg := c["organization"]; !hasOrg {
		if name, ok := c["name"]; ok {
			var kept, moved []string
			for _, line := range splitTrimmed(name) {
				if g.looksLikeOrganization(line) {
					moved = append(moved, line)
				} else {
					kept = append(kept, line)
				}
			}
			if len(kept) > 0 {
				c["name"] = strings.Join(kept, "\n")
			} else {
				delete(c, "name")
			}
			if len(moved) > 0 {
				c["organization"] = strings.Join(moved, "\n")
			}
		}
	}
	if _, hasOrg := c["organization"]; !hasOrg {
		if street, ok := c["street"]; ok {
			lines := splitTrimmed(street)
			if len(lines) > 1 && g.looksLikeOrganization(lines[0]) {
				c["organization"] = lines[0]
				c["street"] = strings.Join(lines[1:], "\n")
			}
		}
	}

	for k, v := range c {
		v = strings.Trim(v, ", ")
		if v == "-" || strings.EqualFold(v, "n/a") || v == "" {
			delete(c, k)
			continue
		}
		c[k] = v
	}
}

func (g *Grammar) looksLikeOrganization(line string) bool {
	for _, rule := range g.orgSuffixes {
		if rule.MatchString(line) {
			return true
		}
	}
	return false
}

func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func isLower(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLower(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
