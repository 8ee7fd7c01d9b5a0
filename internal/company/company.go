// Package company resolves issuer display information from the published
// company list feed. The feed is fetched over HTTP with retry, cached
// in-process, and looked up by issuer address. Lookups never fail the
// caller: an unknown issuer resolves to a zero-value record.
package company

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ibet-fin/ibet-indexer/internal/adapter"
	"github.com/ibet-fin/ibet-indexer/internal/logger"
)

//go:generate mockgen -source=company.go -destination=../mocks/company.go -package=mocks

// Company is one issuer record from the company list feed
type Company struct {
	Address       string `json:"address"`
	CorporateName string `json:"corporate_name"`
	RSAPublicKey  string `json:"rsa_publickey"`
	Homepage      string `json:"homepage"`
}

// List resolves issuer records by address
type List interface {
	// Find returns the issuer record for an address, or a zero-value record
	// when the issuer is not on the list
	Find(ctx context.Context, address string) Company
	// All returns every issuer on the list
	All(ctx context.Context) ([]Company, error)
}

type list struct {
	url        string
	ttl        time.Duration
	httpClient adapter.HTTPClient
	clock      adapter.Clock

	mu        sync.RWMutex
	companies []Company
	byAddress map[string]Company
	fetchedAt time.Time
}

// NewList creates a company list backed by the feed at url, refreshed at most
// once per ttl
func NewList(url string, ttl time.Duration, httpClient adapter.HTTPClient, clock adapter.Clock) List {
	return &list{
		url:        url,
		ttl:        ttl,
		httpClient: httpClient,
		clock:      clock,
		byAddress:  map[string]Company{},
	}
}

func (l *list) refresh(ctx context.Context) error {
	l.mu.RLock()
	fresh := !l.fetchedAt.IsZero() && l.clock.Since(l.fetchedAt) < l.ttl
	l.mu.RUnlock()
	if fresh {
		return nil
	}

	var companies []Company
	if err := l.httpClient.Get(ctx, l.url, &companies); err != nil {
		return err
	}

	byAddress := make(map[string]Company, len(companies))
	for _, c := range companies {
		byAddress[strings.ToLower(c.Address)] = c
	}

	l.mu.Lock()
	l.companies = companies
	l.byAddress = byAddress
	l.fetchedAt = l.clock.Now()
	l.mu.Unlock()
	return nil
}

// Find returns the issuer record for an address, or a zero-value record when
// the issuer is not on the list. A stale cache is served when the feed is
// unreachable.
func (l *list) Find(ctx context.Context, address string) Company {
	if err := l.refresh(ctx); err != nil {
		logger.WarnCtx(ctx, "failed to refresh company list, serving cache",
			zap.String("url", l.url),
			zap.Error(err))
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.byAddress[strings.ToLower(address)]
}

// All returns every issuer on the list
func (l *list) All(ctx context.Context) ([]Company, error) {
	if err := l.refresh(ctx); err != nil {
		l.mu.RLock()
		defer l.mu.RUnlock()
		if len(l.companies) > 0 {
			return l.companies, nil
		}
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.companies, nil
}
