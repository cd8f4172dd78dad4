package whois

import (
	"regexp"
	"strings"
)

// Fields maps a record field name (status, registrar, nameservers, ...) to
// the values collected for it, in encounter order.
type Fields map[string][]string

// ExtractFields collects the scalar record fields from the raw segments.
// Every line is tried against each field's patterns in order; the first
// pattern that matches a line wins for that line, and values accumulate
// across lines and segments. Registry-specific block formats that the
// line-oriented pass cannot express are handled afterwards per segment.
func (g *Grammar) ExtractFields(segments []string) Fields {
	fields := make(Fields)
	for _, segment := range segments {
		segment = strings.ReplaceAll(segment, "\r", "")
		for _, key := range g.fieldOrder {
			for _, line := range strings.Split(segment, "\n") {
				for _, rule := range g.fields[key] {
					m := rule.FindStringSubmatch(line)
					if m == nil {
						continue
					}
					if val := strings.TrimSpace(m[rule.SubexpIndex("val")]); val != "" {
						fields[key] = append(fields[key], val)
					}
					break
				}
			}
		}
		applyRegistryOverrides(fields, segment)
	}
	return fields
}

// Block formats used by registries whose output doesn't fit the
// one-line-per-field model.
var (
	nsBlock        = regexp.MustCompile(`(?m)^\s?Name\s?[Ss]ervers:?\s*\n((?:\s*.+\n)+?\s?)(?:\n|$)`) // Whois.com, Fabulous.com
	nsBlockLine    = regexp.MustCompile(`[ ]*(.+)\n`)
	nsKeyedLine    = regexp.MustCompile(`^[a-zA-Z]+:`)
	ukRegistrar    = regexp.MustCompile(`    Registrar:\n        (.+)\n`) // Nominet
	ukStatus       = regexp.MustCompile(`    Registration status:\n        (.+)\n`)
	ukNS           = regexp.MustCompile(`    Name servers:\n([\s\S]*?\n)\n`)
	ukNSLine       = regexp.MustCompile(`        (.+)\n`)
	acukRegistrar  = regexp.MustCompile(`Registered By:\n\t(.+)\n`) // janet (.ac.uk)
	acukCreated    = regexp.MustCompile(`Entry created:\n\t(.+)\n`)
	acukRenewal    = regexp.MustCompile(`Renewal date:\n\t(.+)\n`)
	acukUpdated    = regexp.MustCompile(`Entry updated:\n\t(.+)\n`)
	acukNS         = regexp.MustCompile(`Servers:([\s\S]*?\n)\n`)
	acukNSLine     = regexp.MustCompile(`\t(.+)\n`)
	amNS           = regexp.MustCompile(`   DNS servers:([\s\S]*?\n)\n`) // .am
	amNSLine       = regexp.MustCompile(`      (.+)\n`)
	nlRegistrar    = regexp.MustCompile(`Registrar:\n\s+(?:Name:\s*)?(\S.*)`) // SIDN, EURid
	nlNS           = regexp.MustCompile(`(?:Domain nameservers|Name servers):([\s\S]*?\n)\n`)
	nlNSLine       = regexp.MustCompile(`\s+?(.+)\n`)
	ieRenStatus    = regexp.MustCompile(`ren-status:\s*(.+)`) // .ie
	itRegistrarBlk = regexp.MustCompile(`Registrar\n  Organization:     (.+)\n`) // nic.it
	hkNS           = regexp.MustCompile(`Name Servers Information:\n\n([\s\S]*?\n)\n`) // HKDNR
	hkNSLine       = regexp.MustCompile(`(.+)\n`)
	twNS           = regexp.MustCompile(`   Domain servers in listed order:\n([\s\S]*?\n)\n`) // TWNIC
	twNSLine       = regexp.MustCompile(`      (.+)\n`)
)

func applyRegistryOverrides(fields Fields, segment string) {
	if m := nsBlock.FindStringSubmatch(segment); m != nil {
		for _, line := range nsBlockLine.FindAllStringSubmatch(m[1], -1) {
			entry := strings.TrimSpace(line[1])
			if entry != "" && !nsKeyedLine.MatchString(entry) {
				fields["nameservers"] = append(fields["nameservers"], entry)
			}
		}
	}

	if m := ukRegistrar.FindStringSubmatch(segment); m != nil {
		fields["registrar"] = []string{strings.TrimSpace(m[1])}
	}
	if m := ukStatus.FindStringSubmatch(segment); m != nil {
		fields["status"] = []string{strings.TrimSpace(m[1])}
	}
	if m := ukNS.FindStringSubmatch(segment); m != nil {
		appendServerBlock(fields, ukNSLine, m[1])
	}

	if m := acukRegistrar.FindStringSubmatch(segment); m != nil {
		fields["registrar"] = []string{strings.TrimSpace(m[1])}
	}
	if m := acukCreated.FindStringSubmatch(segment); m != nil {
		fields["creation_date"] = []string{strings.TrimSpace(m[1])}
	}
	if m := acukRenewal.FindStringSubmatch(segment); m != nil {
		fields["expiration_date"] = []string{strings.TrimSpace(m[1])}
	}
	if m := acukUpdated.FindStringSubmatch(segment); m != nil {
		fields["updated_date"] = []string{strings.TrimSpace(m[1])}
	}
	if m := acukNS.FindStringSubmatch(segment); m != nil {
		appendServerBlock(fields, acukNSLine, m[1])
	}

	if m := amNS.FindStringSubmatch(segment); m != nil {
		appendServerBlock(fields, amNSLine, m[1])
	}

	if m := nlRegistrar.FindStringSubmatch(segment); m != nil {
		fields["registrar"] = append([]string{strings.TrimSpace(m[1])}, fields["registrar"]...)
	}
	if m := nlNS.FindStringSubmatch(segment); m != nil {
		for _, line := range nlNSLine.FindAllStringSubmatch(m[1], -1) {
			entry := firstToken(line[1])
			// Bracketed entries are nameserver aliases, not hosts.
			if entry != "" && !strings.HasPrefix(entry, "[") && !strings.HasSuffix(entry, "]") {
				fields["nameservers"] = append(fields["nameservers"], entry)
			}
		}
	}

	// .ie puts the renewal status after less specific status lines; it
	// should take precedence.
	if m := ieRenStatus.FindStringSubmatch(segment); m != nil {
		fields["status"] = append([]string{strings.TrimSpace(m[1])}, fields["status"]...)
	}

	if m := itRegistrarBlk.FindStringSubmatch(segment); m != nil {
		fields["registrar"] = []string{strings.TrimSpace(m[1])}
	}

	if m := hkNS.FindStringSubmatch(segment); m != nil {
		appendServerBlock(fields, hkNSLine, m[1])
	}
	if m := twNS.FindStringSubmatch(segment); m != nil {
		appendServerBlock(fields, twNSLine, m[1])
	}
}

func appendServerBlock(fields Fields, lineRule *regexp.Regexp, chunk string) {
	for _, line := range lineRule.FindAllStringSubmatch(chunk, -1) {
		if entry := firstToken(line[1]); entry != "" {
			fields["nameservers"] = append(fields["nameservers"], entry)
		}
	}
}

func firstToken(s string) string {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}
