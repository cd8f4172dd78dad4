package whois

import (
	"regexp"
)

// Role identifies one of the four standard WHOIS contact roles.
type Role string

const (
	RoleRegistrant Role = "registrant"
	RoleTech       Role = "tech"
	RoleAdmin      Role = "admin"
	RoleBilling    Role = "billing"
)

// Roles lists the contact roles in resolution-priority order.
var Roles = []Role{RoleRegistrant, RoleTech, RoleAdmin, RoleBilling}

// Grammar bundles every compiled pattern table the extraction pipeline uses.
// It is built once by NewGrammar and treated as immutable afterwards; new
// registry formats are added to the tables, not special-cased in code.
type Grammar struct {
	Version int

	fieldOrder []string
	fields     map[string][]*regexp.Regexp

	dateFormats []*regexp.Regexp
	months      map[string]int

	contacts    map[Role][]*regexp.Regexp
	handleRefs  map[Role][]*regexp.Regexp
	nicContacts []*regexp.Regexp
	orgSuffixes []*regexp.Regexp
}

var (
	looseCapture = regexp.MustCompile(`\\s\*\(\?P<([^>]+)>\.\+\)`)
	spaceCapture = regexp.MustCompile(`\[ \]\*\(\?P<([^>]+)>\.\*\)`)
)

// preprocessRegex tightens greedy captures so a leading whitespace run is
// never swallowed into the captured value.
func preprocessRegex(pattern string) string {
	pattern = looseCapture.ReplaceAllString(pattern, `\s*(?P<$1>\S.*)`)
	pattern = spaceCapture.ReplaceAllString(pattern, `(?P<$1>.*)`)
	return pattern
}

func compileAll(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

func compileAllFold(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(`(?i)` + p)
	}
	return out
}

func compileContacts(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(preprocessRegex(p))
	}
	return out
}

// NewGrammar builds the versioned pattern tables for record extraction.
func NewGrammar() *Grammar {
	g := &Grammar{
		Version:    1,
		fieldOrder: []string{"id", "status", "creation_date", "expiration_date", "updated_date", "registrar", "whois_server", "nameservers", "emails"},
		fields:     make(map[string][]*regexp.Regexp),
		months: map[string]int{
			"jan": 1, "january": 1,
			"feb": 2, "february": 2,
			"mar": 3, "march": 3,
			"apr": 4, "april": 4,
			"may": 5,
			"jun": 6, "june": 6,
			"jul": 7, "july": 7,
			"aug": 8, "august": 8,
			"sep": 9, "sept": 9, "september": 9,
			"oct": 10, "october": 10,
			"nov": 11, "november": 11,
			"dec": 12, "december": 12,
		},
		contacts:   make(map[Role][]*regexp.Regexp),
		handleRefs: make(map[Role][]*regexp.Regexp),
	}

	g.fields["id"] = compileAllFold([]string{
		`Domain ID:[ ]*(?P<val>.+)`,
	})
	g.fields["status"] = compileAllFold([]string{
		`\[Status\]\s*(?P<val>.+)`,
		`Status\s*:\s?(?P<val>.+)`,
		`\[State\]\s*(?P<val>.+)`,
		`^state:\s*(?P<val>.+)`,
	})
	g.fields["creation_date"] = compileAllFold([]string{
		`\[Created on\]\s*(?P<val>.+)`,
		`Created on[.]*: [a-zA-Z]+, (?P<val>.+)`,
		`Creation Date:\s?(?P<val>.+)`,
		`Creation date\s*:\s?(?P<val>.+)`,
		`Registration Date:\s?(?P<val>.+)`,
		`Created Date:\s?(?P<val>.+)`,
		`Created on:\s?(?P<val>.+)`,
		`Created on\s?[.]*:\s?(?P<val>.+)\.`,
		`Date Registered\s?[.]*:\s?(?P<val>.+)`,
		`Domain Created\s?[.]*:\s?(?P<val>.+)`,
		`Domain registered\s?[.]*:\s?(?P<val>.+)`,
		`Domain record activated\s?[.]*:\s*?(?P<val>.+)`,
		`Record created on\s?[.]*:?\s*?(?P<val>.+)`,
		`Record created\s?[.]*:?\s*?(?P<val>.+)`,
		`Created\s?[.]*:?\s*?(?P<val>.+)`,
		`Registered on\s?[.]*:?\s*?(?P<val>.+)`,
		`Registered\s?[.]*:?\s*?(?P<val>.+)`,
		`Domain Create Date\s?[.]*:?\s*?(?P<val>.+)`,
		`Domain Registration Date\s?[.]*:?\s*?(?P<val>.+)`,
		`created:\s*(?P<val>.+)`,
		`\[Registered Date\]\s*(?P<val>.+)`,
		`created-date:\s*(?P<val>.+)`,
		`Domain Name Commencement Date: (?P<val>.+)`,
		`registered:\s*(?P<val>.+)`,
		`registration:\s*(?P<val>.+)`,
	})
	g.fields["expiration_date"] = compileAllFold([]string{
		`\[Expires on\]\s*(?P<val>.+)`,
		`Registrar Registration Expiration Date:[ ]*(?P<val>.+)-[0-9]{4}`,
		`Expires on[.]*: [a-zA-Z]+, (?P<val>.+)`,
		`Expiration Date:\s?(?P<val>.+)`,
		`Expiration date\s*:\s?(?P<val>.+)`,
		`Expires on:\s?(?P<val>.+)`,
		`Expires on\s?[.]*:\s?(?P<val>.+)\.`,
		`Exp(?:iry)? Date\s?[.]*:\s?(?P<val>.+)`,
		`Expiry\s*:\s?(?P<val>.+)`,
		`Domain Currently Expires\s?[.]*:\s?(?P<val>.+)`,
		`Record will expire on\s?[.]*:\s?(?P<val>.+)`,
		`Domain expires\s?[.]*:\s*?(?P<val>.+)`,
		`Record expires on\s?[.]*:?\s*?(?P<val>.+)`,
		`Record expires\s?[.]*:?\s*?(?P<val>.+)`,
		`Expires\s?[.]*:?\s*?(?P<val>.+)`,
		`Expire Date\s?[.]*:?\s*?(?P<val>.+)`,
		`Expired\s?[.]*:?\s*?(?P<val>.+)`,
		`Domain Expiration Date\s?[.]*:?\s*?(?P<val>.+)`,
		`paid-till:\s*(?P<val>.+)`,
		`expiration_date:\s*(?P<val>.+)`,
		`expire-date:\s*(?P<val>.+)`,
		`renewal:\s*(?P<val>.+)`,
		`expire:\s*(?P<val>.+)`,
	})
	g.fields["updated_date"] = compileAllFold([]string{
		`\[Last Updated\]\s*(?P<val>.+)`,
		`Record modified on[.]*: (?P<val>.+) [a-zA-Z]+`,
		`Record last updated on[.]*: [a-zA-Z]+, (?P<val>.+)`,
		`Updated Date:\s?(?P<val>.+)`,
		`Updated date\s*:\s?(?P<val>.+)`,
		`Record last updated on\s?[.]*:?\s?(?P<val>.+)\.`,
		`Domain record last updated\s?[.]*:\s*?(?P<val>.+)`,
		`Domain Last Updated\s?[.]*:\s*?(?P<val>.+)`,
		`Last updated on:\s?(?P<val>.+)`,
		`Date Modified\s?[.]*:\s?(?P<val>.+)`,
		`Last Modified\s?[.]*:\s?(?P<val>.+)`,
		`Domain Last Updated Date\s?[.]*:\s?(?P<val>.+)`,
		`Record last updated\s?[.]*:\s?(?P<val>.+)`,
		`Modified\s?[.]*:\s?(?P<val>.+)`,
		`(C|c)hanged:\s*(?P<val>.+)`,
		`last_update:\s*(?P<val>.+)`,
		`Last Update\s?[.]*:\s?(?P<val>.+)`,
		`Last updated on (?P<val>.+) [a-z]{3,4}`,
		`Last updated:\s*(?P<val>.+)`,
		`last-updated:\s*(?P<val>.+)`,
		`\[Last Update\]\s*(?P<val>.+) \([A-Z]+\)`,
	})
	g.fields["registrar"] = compileAllFold([]string{
		`registrar:\s*(?P<val>.+)`,
		`Registrar:\s*(?P<val>.+)`,
		`Sponsoring Registrar Organization:\s*(?P<val>.+)`,
		`Registered through:\s?(?P<val>.+)`,
		`Registrar Name[.]*:\s?(?P<val>.+)`,
		`Record maintained by:\s?(?P<val>.+)`,
		`Registration Service Provided By:\s?(?P<val>.+)`,
		`Registrar of Record:\s?(?P<val>.+)`,
		`Domain Registrar :\s?(?P<val>.+)`,
		`Registration Service Provider: (?P<val>.+)`,
		"\tName:\t\\s(?P<val>.+)",
	})
	g.fields["whois_server"] = compileAllFold([]string{
		`Whois Server:\s?(?P<val>.+)`,
		`Registrar Whois:\s?(?P<val>.+)`,
	})
	g.fields["nameservers"] = compileAllFold([]string{
		`Name Server:[ ]*(?P<val>[^ ]+)`,
		`Nameservers:[ ]*(?P<val>[^ ]+)`,
		`[ .]{2}(?P<val>([a-z0-9-]+\.)+[a-z0-9]+)(\s+([0-9]{1,3}\.){3}[0-9]{1,3})`,
		`nameserver:\s*(?P<val>.+)`,
		`nserver:\s*(?P<val>[^[\s]+)`,
		`Name Server[.]+ (?P<val>[^[\s]+)`,
		`Hostname:\s*(?P<val>[^\s]+)`,
		`DNS[0-9]+:\s*(?P<val>.+)`,
		`   DNS:\s*(?P<val>.+)`,
		`ns[0-9]+:\s*(?P<val>.+)`,
		`NS [0-9]+\s*:\s*(?P<val>.+)`,
		`\[Name Server\]\s*(?P<val>.+)`,
		`[ .]{2}(?P<val>[a-z0-9-]+\.d?ns[0-9]*\.([a-z0-9-]+\.)+[a-z0-9]+)`,
		`[ .]{2}[^a-z0-9.-](?P<val>d?ns\.([a-z0-9-]+\.)+[a-z0-9]+)`,
		`Nserver:\s*(?P<val>.+)`,
	})
	g.fields["emails"] = compileAllFold([]string{
		`(?P<val>[\w.-]+@[\w.-]+\.[\w]{2,6})`,
		`(?P<val>[\w.-]+\sAT\s[\w.-]+\sDOT\s[\w]{2,6})`,
	})

	g.dateFormats = compileAllFold([]string{
		`(?P<day>[0-9]{1,2})[./ -](?P<month>Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[./ -](?P<year>[0-9]{4}|[0-9]{2})(\s+(?P<hour>[0-9]{1,2})[:.](?P<minute>[0-9]{1,2})[:.](?P<second>[0-9]{1,2}))?`,
		`[a-z]{3}\s(?P<month>Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[./ -](?P<day>[0-9]{1,2})(\s+(?P<hour>[0-9]{1,2})[:.](?P<minute>[0-9]{1,2})[:.](?P<second>[0-9]{1,2}))?\s[a-z]{3}\s(?P<year>[0-9]{4}|[0-9]{2})`,
		`[a-zA-Z]+\s(?P<day>[0-9]{1,2})(?:st|nd|rd|th)\s(?P<month>Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec|January|February|March|April|May|June|July|August|September|October|November|December)\s(?P<year>[0-9]{4})`,
		`(?P<year>[0-9]{4})[./-]?(?P<month>[0-9]{2})[./-]?(?P<day>[0-9]{2})(\s|T|/)((?P<hour>[0-9]{1,2})[:.-](?P<minute>[0-9]{1,2})[:.-](?P<second>[0-9]{1,2}))`,
		`(?P<year>[0-9]{4})[./-](?P<month>[0-9]{1,2})[./-](?P<day>[0-9]{1,2})`,
		`(?P<day>[0-9]{1,2})[./ -](?P<month>[0-9]{1,2})[./ -](?P<year>[0-9]{4}|[0-9]{2})`,
		`(?P<month>Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) (?P<day>[0-9]{1,2}),? (?P<year>[0-9]{4})`,
		`(?P<day>[0-9]{1,2})-(?P<month>January|February|March|April|May|June|July|August|September|October|November|December)-(?P<year>[0-9]{4})`,
	})

	g.contacts[RoleRegistrant] = compileContacts(registrantPatterns)
	g.contacts[RoleTech] = compileContacts(techPatterns)
	g.contacts[RoleAdmin] = compileContacts(adminPatterns)
	g.contacts[RoleBilling] = compileContacts(billingPatterns)

	g.handleRefs[RoleRegistrant] = compileAll([]string{
		`registrant:\s*(?P<handle>.+)`,    // nic.at
		`owner-contact:\s*(?P<handle>.+)`, // LCN.com
		`holder-c:\s*(?P<handle>.+)`,      // AFNIC
		`holder:\s*(?P<handle>.+)`,        // iis.se
	})
	g.handleRefs[RoleTech] = compileAll([]string{
		`tech-c:\s*(?P<handle>.+)`,             // nic.at, AFNIC, iis.se
		`technical-contact:\s*(?P<handle>.+)`,  // LCN.com
		"n\\. \\[Technical Contact\\]          (?P<handle>.+)\n", // .co.jp
	})
	g.handleRefs[RoleAdmin] = compileAll([]string{
		`admin-c:\s*(?P<handle>.+)`,       // nic.at, AFNIC, iis.se
		`admin-contact:\s*(?P<handle>.+)`, // LCN.com
		"m\\. \\[Administrative Contact\\]     (?P<handle>.+)\n", // .co.jp
	})
	g.handleRefs[RoleBilling] = compileAll([]string{
		`billing-c:\s*(?P<handle>.+)`,       // iis.se
		`billing-contact:\s*(?P<handle>.+)`, // LCN.com
	})

	g.nicContacts = compileAll(nicContactPatterns)

	g.orgSuffixes = compileAllFold([]string{
		`\sltd\.?($|\s)`,
		`\sco\.?($|\s)`,
		`\scorp\.?($|\s)`,
		`\sinc\.?($|\s)`,
		`\ss\.?p\.?a\.?($|\s)`,
		`\ss\.?(c\.?)?r\.?l\.?($|\s)`,
		`\ss\.?a\.?s\.?($|\s)`,
		`\sa\.?g\.?($|\s)`,
		`\sn\.?v\.?($|\s)`,
		`\sb\.?v\.?($|\s)`,
		`\sp\.?t\.?y\.?($|\s)`,
		`\sp\.?l\.?c\.?($|\s)`,
		`\sv\.?o\.?f\.?($|\s)`,
		`\sb\.?v\.?b\.?a\.?($|\s)`,
		`\sg\.?m\.?b\.?h\.?($|\s)`,
		`\ss\.?a\.?r\.?l\.?($|\s)`,
	})

	return g
}
