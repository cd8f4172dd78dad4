package whois

import (
	"context"
	"fmt"
	"io"
	"net"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const whoisPort = "43"

// NetFetcher is the default RecordFetcher. It queries the TLD's registry
// server on port 43 and follows registrar referrals, returning one segment
// per server in the chain.
type NetFetcher struct {
	// Timeout bounds each individual server conversation. Zero means the
	// context deadline alone applies.
	Timeout time.Duration
	// MaxReferrals caps the referral chain length.
	MaxReferrals int
	// HandleServer, when set, is used for NIC handle lookups.
	HandleServer string
}

// NewNetFetcher returns a fetcher with conservative defaults.
func NewNetFetcher() *NetFetcher {
	return &NetFetcher{Timeout: 10 * time.Second, MaxReferrals: 3}
}

var referralPattern = regexp.MustCompile(`(?i)(?:Whois Server|refer):\s*([^\s]+)`)

// Fetch queries the registry chain for a domain's WHOIS record.
func (f *NetFetcher) Fetch(ctx context.Context, domain string) ([]string, error) {
	tld := domain
	if i := strings.LastIndex(domain, "."); i >= 0 {
		tld = domain[i+1:]
	}
	server := tld + ".whois-servers.net"

	var segments []string
	seen := map[string]bool{}
	for hop := 0; ; hop++ {
		seen[server] = true
		response, err := f.query(ctx, server, domain)
		if err != nil {
			if len(segments) > 0 {
				// A dead referral shouldn't discard what we already have.
				logrus.Debugf("whois referral %s failed for %s: %v", server, domain, err)
				break
			}
			return nil, fmt.Errorf("whois query %s for %s: %w", server, domain, err)
		}
		segments = append(segments, response)

		if hop >= f.MaxReferrals {
			break
		}
		next := referral(response)
		if next == "" || seen[next] {
			break
		}
		server = next
	}
	return segments, nil
}

// FetchHandle looks up a NIC contact handle on the configured handle server.
func (f *NetFetcher) FetchHandle(ctx context.Context, handle string) ([]string, error) {
	if f.HandleServer == "" {
		return nil, fmt.Errorf("no handle server configured")
	}
	response, err := f.query(ctx, f.HandleServer, handle)
	if err != nil {
		return nil, err
	}
	return []string{response}, nil
}

func (f *NetFetcher) query(ctx context.Context, server, request string) (string, error) {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(server, whoisPort))
	if err != nil {
		return "", err
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	if _, err := fmt.Fprintf(conn, "%s\r\n", request); err != nil {
		return "", err
	}
	raw, err := io.ReadAll(conn)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(raw), "\r", ""), nil
}

func referral(response string) string {
	m := referralPattern.FindStringSubmatch(response)
	if m == nil {
		return ""
	}
	server := strings.TrimSpace(m[1])
	server = strings.TrimPrefix(server, "whois://")
	server = strings.TrimSuffix(server, "/")
	if server == "" || strings.Contains(server, "@") {
		return ""
	}
	return server
}
