package whois

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"geoprovenance/backend/internal/country"
	"geoprovenance/backend/internal/urlkit"
)

// RecordFetcher retrieves the raw WHOIS record segments for a domain. Most
// domains yield a single segment; referral chains yield one per server.
type RecordFetcher interface {
	Fetch(ctx context.Context, domain string) ([]string, error)
}

// Provider resolves the country associated with a domain's WHOIS record.
// Results are cached so each registered domain is queried at most once;
// concurrent lookups for the same domain are collapsed, and outbound
// queries are rate limited out of politeness to the registries.
type Provider struct {
	grammar *Grammar
	cache   *Cache
	fetcher RecordFetcher
	table   *country.Table
	aliases *country.AliasIndex
	limiter *rate.Limiter
	group   singleflight.Group
}

// NewProvider wires up a provider. fetcher may be nil, in which case only
// cached results are served and misses resolve to the empty result.
func NewProvider(grammar *Grammar, cache *Cache, fetcher RecordFetcher, table *country.Table, aliases *country.AliasIndex, limiter *rate.Limiter) *Provider {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &Provider{
		grammar: grammar,
		cache:   cache,
		fetcher: fetcher,
		table:   table,
		aliases: aliases,
		limiter: limiter,
	}
}

// GetParsed returns the country found by the structured strategy, or ""
// when that strategy did not succeed for the URL's registered domain.
func (p *Provider) GetParsed(ctx context.Context, url string) (string, error) {
	result, err := p.lookup(ctx, url)
	if err != nil {
		return "", err
	}
	if result.Kind != ResultParsed {
		return "", nil
	}
	return result.Country, nil
}

// GetFreetext returns the normalized alias-mention histogram from the
// freetext strategy, or nil when that strategy did not apply.
func (p *Provider) GetFreetext(ctx context.Context, url string) (map[string]float64, error) {
	result, err := p.lookup(ctx, url)
	if err != nil {
		return nil, err
	}
	if result.Kind != ResultFreetext {
		return nil, nil
	}
	return result.Freetext, nil
}

func (p *Provider) lookup(ctx context.Context, url string) (Result, error) {
	domain := urlkit.RegisteredDomain(url)
	if domain == "" {
		return Result{Kind: ResultEmpty}, nil
	}
	if result, ok := p.cache.Get(domain); ok {
		return result, nil
	}
	if p.fetcher == nil {
		return Result{Kind: ResultEmpty}, nil
	}

	v, err, _ := p.group.Do(domain, func() (interface{}, error) {
		// Another caller may have filled the cache while we queued.
		if result, ok := p.cache.Get(domain); ok {
			return result, nil
		}
		if err := p.limiter.Wait(ctx); err != nil {
			return Result{}, err
		}
		return p.resolve(ctx, domain), nil
	})
	if err != nil {
		return Result{}, err
	}
	return v.(Result), nil
}

// resolve runs the lookup and extraction pipeline and records the outcome.
// Failures are cached as empty results so a broken domain is not retried.
func (p *Provider) resolve(ctx context.Context, domain string) Result {
	logrus.Infof("running whois lookup for %s", domain)
	segments, err := p.fetcher.Fetch(ctx, domain)
	if err != nil {
		logrus.Warnf("whois lookup for %s failed: %v", domain, err)
		return p.store(domain, Result{Kind: ResultEmpty}, nil)
	}

	if parsed := p.extractParsedCountry(ctx, segments, true); parsed != "" {
		return p.store(domain, Result{Kind: ResultParsed, Country: parsed}, nil)
	}

	counts := p.aliases.ExtractFreetextCountry(segments)
	if len(counts) > 0 {
		var total float64
		for _, n := range counts {
			total += float64(n)
		}
		normalized := make(map[string]float64, len(counts))
		for c, n := range counts {
			normalized[c] = float64(n) / total
		}
		return p.store(domain, Result{Kind: ResultFreetext, Freetext: normalized}, counts)
	}

	logrus.Warnf("no country found in whois record for %s", domain)
	return p.store(domain, Result{Kind: ResultEmpty}, nil)
}

func (p *Provider) store(domain string, result Result, rawCounts map[string]int) Result {
	if err := p.cache.Put(domain, result, rawCounts); err != nil {
		logrus.Errorf("persist whois result for %s: %v", domain, err)
	}
	return result
}

// extractParsedCountry implements the structured strategy: grammar-parsed
// contact countries in admin > tech > registrant priority, then line
// heuristics for admin country fields, then one retry with tabs flattened
// to spaces for registries that use tab-indented records.
func (p *Provider) extractParsedCountry(ctx context.Context, segments []string, firstTry bool) string {
	handles, _ := p.fetcher.(HandleFetcher)
	rec := p.grammar.ParseRecord(ctx, segments, handles)

	found := make(map[Role]string)
	for role, contact := range rec.Contacts {
		raw, ok := contact["country"]
		if !ok {
			continue
		}
		if name := p.aliases.NormalizeCountry(raw, p.table); name != "" {
			found[role] = name
		}
	}
	if len(found) > 0 {
		for _, role := range []Role{RoleAdmin, RoleTech, RoleRegistrant} {
			if name, ok := found[role]; ok {
				return name
			}
		}
		for _, role := range Roles {
			if name, ok := found[role]; ok {
				return name
			}
		}
	}

	lines := strings.Split(strings.ToLower(strings.Join(segments, "\n")), "\n")
	for _, line := range lines {
		if strings.Contains(line, "admin") && strings.Contains(line, "country code") {
			if name := p.normalizeLineValue(line); name != "" {
				return name
			}
		}
	}
	for _, line := range lines {
		if strings.Contains(line, "admin country") {
			if name := p.normalizeLineValue(line); name != "" {
				return name
			}
		}
	}

	if firstTry {
		flattened := make([]string, len(segments))
		for i, s := range segments {
			flattened[i] = strings.ReplaceAll(s, "\t", "  ")
		}
		return p.extractParsedCountry(ctx, flattened, false)
	}
	return ""
}

func (p *Provider) normalizeLineValue(line string) string {
	tokens := strings.Split(line, ":")
	if len(tokens) < 2 {
		return ""
	}
	return p.aliases.NormalizeCountry(strings.TrimSpace(tokens[len(tokens)-1]), p.table)
}
