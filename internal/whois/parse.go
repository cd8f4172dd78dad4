package whois

import (
	"context"
	"strings"
	"time"
)

// Record is a parsed WHOIS record. Date fields are lifted out of Fields
// into typed slices; everything else stays keyed by field name.
type Record struct {
	Fields          Fields
	CreationDates   []time.Time
	ExpirationDates []time.Time
	UpdatedDates    []time.Time
	Contacts        map[Role]Contact
}

// ParseRecord runs the full extraction pipeline over the raw response
// segments: scalar fields, contacts (with optional NIC handle resolution
// through fetcher), date parsing, nameserver cleanup and normalization.
func (g *Grammar) ParseRecord(ctx context.Context, segments []string, fetcher HandleFetcher) *Record {
	clean := make([]string, len(segments))
	for i, s := range segments {
		clean[i] = strings.ReplaceAll(s, "\r", "")
	}

	fields := g.ExtractFields(clean)
	contacts := g.ExtractContacts(ctx, clean, fetcher)

	rec := &Record{Fields: fields, Contacts: contacts}
	rec.CreationDates = g.ParseDates(dedupe(fields["creation_date"]))
	rec.ExpirationDates = g.ParseDates(dedupe(fields["expiration_date"]))
	rec.UpdatedDates = g.ParseDates(dedupe(fields["updated_date"]))
	delete(fields, "creation_date")
	delete(fields, "expiration_date")
	delete(fields, "updated_date")

	if ns, ok := fields["nameservers"]; ok {
		for i, entry := range ns {
			// Drop trailing IP suffixes and root dots.
			ns[i] = strings.TrimSuffix(firstToken(entry), ".")
		}
		fields["nameservers"] = dedupe(ns)
	}
	fields["emails"] = dedupe(fields["emails"])
	fields["registrar"] = dedupe(fields["registrar"])

	// Emails already attributed to a contact are not interesting at the
	// record level.
	known := make(map[string]bool)
	for _, c := range contacts {
		if email, ok := c["email"]; ok {
			known[email] = true
		}
	}
	var emails []string
	for _, email := range fields["emails"] {
		if !known[email] {
			emails = append(emails, email)
		}
	}
	fields["emails"] = emails

	for key, values := range fields {
		if len(values) == 0 {
			delete(fields, key)
		}
	}

	g.NormalizeRecord(fields, contacts)
	return rec
}

func dedupe(values []string) []string {
	var out []string
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
