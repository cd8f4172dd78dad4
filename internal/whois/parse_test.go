package whois

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestParseDates(t *testing.T) {
	g := NewGrammar()
	tests := []struct {
		in       string
		expected time.Time
	}{
		{"16-November-2006", time.Date(2006, 11, 16, 0, 0, 0, 0, time.UTC)},
		{"2006-11-16", time.Date(2006, 11, 16, 0, 0, 0, 0, time.UTC)},
		{"2006-11-16 12:30:45", time.Date(2006, 11, 16, 12, 30, 45, 0, time.UTC)},
		{"16.11.2006", time.Date(2006, 11, 16, 0, 0, 0, 0, time.UTC)},
		{"Nov 16, 2006", time.Date(2006, 11, 16, 0, 0, 0, 0, time.UTC)},
		{"16-Nov-06", time.Date(2006, 11, 16, 0, 0, 0, 0, time.UTC)},
		{"16-Nov-98", time.Date(1998, 11, 16, 0, 0, 0, 0, time.UTC)},
		// Month and day the wrong way around; the swap retry should fix it.
		{"2006-25-12", time.Date(2006, 12, 25, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		got := g.ParseDates([]string{tc.in})
		if len(got) != 1 {
			t.Fatalf("ParseDates(%q): expected 1 date got %d", tc.in, len(got))
		}
		if !got[0].Equal(tc.expected) {
			t.Fatalf("ParseDates(%q): expected %v got %v", tc.in, tc.expected, got[0])
		}
	}
}

func TestParseDatesDropsGarbage(t *testing.T) {
	g := NewGrammar()
	got := g.ParseDates([]string{"not a date", "2006-99-99"})
	if len(got) != 0 {
		t.Fatalf("expected no dates got %v", got)
	}
}

func TestExtractFieldsStandardRecord(t *testing.T) {
	g := NewGrammar()
	record := strings.Join([]string{
		"Domain Name: EXAMPLE.COM",
		"Registrar: Example Registrar, Inc.",
		"Whois Server: whois.example-registrar.com",
		"Status: clientTransferProhibited",
		"Creation Date: 1995-08-14T04:00:00Z",
		"Expiration Date: 2026-08-13T04:00:00Z",
		"Name Server: A.IANA-SERVERS.NET",
		"Name Server: B.IANA-SERVERS.NET",
		"",
	}, "\n")

	fields := g.ExtractFields([]string{record})
	if len(fields["registrar"]) != 1 || fields["registrar"][0] != "Example Registrar, Inc." {
		t.Fatalf("expected registrar got %v", fields["registrar"])
	}
	if len(fields["status"]) != 1 || fields["status"][0] != "clientTransferProhibited" {
		t.Fatalf("expected status got %v", fields["status"])
	}
	if len(fields["nameservers"]) != 2 {
		t.Fatalf("expected 2 nameservers got %v", fields["nameservers"])
	}
	if len(fields["creation_date"]) != 1 {
		t.Fatalf("expected creation date got %v", fields["creation_date"])
	}
}

func TestExtractFieldsNominetBlocks(t *testing.T) {
	g := NewGrammar()
	record := "    Registrar:\n        Example Networks Ltd\n\n" +
		"    Registration status:\n        Registered until expiry date.\n\n" +
		"    Name servers:\n        ns1.example.co.uk  192.0.2.1\n        ns2.example.co.uk\n\n"

	fields := g.ExtractFields([]string{record})
	if len(fields["registrar"]) != 1 || fields["registrar"][0] != "Example Networks Ltd" {
		t.Fatalf("expected Nominet registrar got %v", fields["registrar"])
	}
	if len(fields["status"]) == 0 || fields["status"][0] != "Registered until expiry date." {
		t.Fatalf("expected Nominet status got %v", fields["status"])
	}
	found := false
	for _, ns := range fields["nameservers"] {
		if ns == "ns1.example.co.uk" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ns1.example.co.uk in %v", fields["nameservers"])
	}
}

func TestExtractContactsInline(t *testing.T) {
	g := NewGrammar()
	record := strings.Join([]string{
		"Registrant Name: John Smith",
		"Registrant Organization: Example Widgets",
		"Registrant Street: 1 Main Street",
		"Registrant City: Springfield",
		"Registrant State/Province: IL",
		"Registrant Postal Code: 62701",
		"Registrant Country: US",
		"Registrant Phone: +1.5551234567",
		"Registrant Email: JOHN@EXAMPLE.COM",
		"",
	}, "\n")

	contacts := g.ExtractContacts(context.Background(), []string{record}, nil)
	reg := contacts[RoleRegistrant]
	if reg == nil {
		t.Fatalf("expected registrant contact")
	}
	if reg["name"] != "John Smith" {
		t.Fatalf("expected John Smith got %q", reg["name"])
	}
	if reg["country"] != "US" {
		t.Fatalf("expected US got %q", reg["country"])
	}
	if reg["street"] != "1 Main Street" {
		t.Fatalf("expected street merge got %q", reg["street"])
	}
}

func TestExtractContactsHandleReference(t *testing.T) {
	g := NewGrammar()
	record := "domain: example.at\n" +
		"registrant: EXAMPLE-R-1\n" +
		"tech-c: EXAMPLE-T-1\n" +
		"\n" +
		"personname: Jane Doe\n" +
		"organization: Example GmbH\n" +
		"street address: Hauptstrasse 1\n" +
		"postal code: 1010\n" +
		"city: Wien\n" +
		"country: Austria\n" +
		"nic-hdl: EXAMPLE-R-1\n" +
		"changed: 20200101 12:00:00\n"

	contacts := g.ExtractContacts(context.Background(), []string{record}, nil)
	reg := contacts[RoleRegistrant]
	if reg == nil {
		t.Fatalf("expected registrant via handle reference")
	}
	if reg["country"] != "Austria" {
		t.Fatalf("expected Austria got %q", reg["country"])
	}
	if reg["name"] != "Jane Doe" {
		t.Fatalf("expected Jane Doe got %q", reg["name"])
	}
}

func TestExtractContactsIgnoresURLHandles(t *testing.T) {
	g := NewGrammar()
	record := "admin-contact: https://www.nic.ru/whois\n"
	contacts := g.ExtractContacts(context.Background(), []string{record}, nil)
	if contacts[RoleAdmin] != nil {
		t.Fatalf("expected URL handle to be ignored got %v", contacts[RoleAdmin])
	}
}

func TestParseRecordDropsContactEmails(t *testing.T) {
	g := NewGrammar()
	record := strings.Join([]string{
		"Registrant Name: John Smith",
		"Registrant Organization: Example Widgets",
		"Registrant Street: 1 Main Street",
		"Registrant City: Springfield",
		"Registrant State/Province: IL",
		"Registrant Postal Code: 62701",
		"Registrant Country: US",
		"Registrant Phone: +1.5551234567",
		"Registrant Email: john@example.com",
		"Registrar Abuse Contact Email: abuse@example-registrar.com",
		"",
	}, "\n")

	rec := g.ParseRecord(context.Background(), []string{record}, nil)
	for _, email := range rec.Fields["emails"] {
		if email == "john@example.com" {
			t.Fatalf("contact email should not appear at record level: %v", rec.Fields["emails"])
		}
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in       string
		opts     NameOptions
		expected string
	}{
		{"EXAMPLE WIDGETS LIMITED", NameOptions{AbbreviationThreshold: 4, LengthThreshold: 8, LowercaseDomains: true}, "Example Widgets Limited"},
		{"IBM", NameOptions{AbbreviationThreshold: 4, LengthThreshold: 8, LowercaseDomains: true}, "IBM"},
		{"EXAMPLE.COM HOSTING", NameOptions{AbbreviationThreshold: 4, LengthThreshold: 8, LowercaseDomains: true}, "example.com Hosting"},
		{"Mixed Case Stays", NameOptions{AbbreviationThreshold: 4, LengthThreshold: 8, LowercaseDomains: true}, "Mixed Case Stays"},
		{"nic registrar services", NameOptions{AbbreviationThreshold: 4, LengthThreshold: 1, LowercaseDomains: true, IgnoreNIC: true}, "NIC REGISTRAR SERVICES"},
	}
	for _, tc := range tests {
		if got := NormalizeName(tc.in, tc.opts); got != tc.expected {
			t.Fatalf("NormalizeName(%q): expected %q got %q", tc.in, tc.expected, got)
		}
	}
}

func TestOrganizationSplitFromName(t *testing.T) {
	g := NewGrammar()
	c := Contact{"name": "Example Widgets Ltd."}
	g.normalizeContact(c)
	if c["organization"] != "Example Widgets Ltd." {
		t.Fatalf("expected legal suffix to move line to organization got %v", c)
	}
	if _, ok := c["name"]; ok {
		t.Fatalf("expected name to be removed got %q", c["name"])
	}
}
