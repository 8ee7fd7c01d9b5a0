// Package token fetches on-chain token attributes and maps them into the
// indexed detail rows. One adapter per token template; the processor picks
// the adapter through the template enum.
//
// Mandatory attributes (owner, name, symbol) fail the fetch when unreadable.
// Every optional attribute substitutes an explicit per-field default when the
// contract call reverts or the method is absent; transport failures always
// propagate so the caller can back off.
package token

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/ibet-fin/ibet-indexer/internal/chain"
	"github.com/ibet-fin/ibet-indexer/internal/company"
	"github.com/ibet-fin/ibet-indexer/internal/contracts"
	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/store/schema"
)

//go:generate mockgen -source=adapter.go -destination=../mocks/token.go -package=mocks

// Default values substituted for unreadable optional attributes
const (
	defaultString = ""
	defaultBool   = false
	zeroAddress   = "0x0000000000000000000000000000000000000000"
	imageURLSlots = 3
)

// Adapter fetches the full attribute set of one token template
type Adapter interface {
	// Template returns the template this adapter handles
	Template() domain.TokenTemplate
	// Fetch reads every indexed attribute of the token at tokenAddress,
	// carrying over the listing's local quantity limits
	Fetch(ctx context.Context, tokenAddress string, listing schema.Listing) (schema.TokenDetail, error)
}

// NewAdapter returns the adapter for a template
func NewAdapter(template domain.TokenTemplate, chainClient chain.Client, registry *contracts.Registry, companies company.List) (Adapter, error) {
	contractABI, ok := registry.TemplateABI(template)
	if !ok {
		return nil, fmt.Errorf("no ABI registered for template %s", template)
	}
	f := fetcher{chain: chainClient, abi: contractABI, companies: companies}

	switch template {
	case domain.TemplateStraightBond:
		return &bondAdapter{fetcher: f}, nil
	case domain.TemplateShare:
		return &shareAdapter{fetcher: f}, nil
	case domain.TemplateMembership:
		return &membershipAdapter{fetcher: f}, nil
	case domain.TemplateCoupon:
		return &couponAdapter{fetcher: f}, nil
	default:
		return nil, fmt.Errorf("unknown template %s", template)
	}
}

// NewAdapters returns one adapter per enabled template
func NewAdapters(templates []domain.TokenTemplate, chainClient chain.Client, registry *contracts.Registry, companies company.List) ([]Adapter, error) {
	adapters := make([]Adapter, 0, len(templates))
	for _, template := range templates {
		a, err := NewAdapter(template, chainClient, registry, companies)
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, a)
	}
	return adapters, nil
}

// fetcher holds the shared call surface of all adapters
type fetcher struct {
	chain     chain.Client
	abi       abi.ABI
	companies company.List
}

// optString reads an optional string attribute, substituting def when the
// call fails on chain
func (f *fetcher) optString(ctx context.Context, contract, method, def string) (string, error) {
	value, err := f.chain.CallString(ctx, f.abi, contract, method)
	if err != nil {
		if errors.Is(err, domain.ErrCallFailed) {
			return def, nil
		}
		return "", err
	}
	return value, nil
}

func (f *fetcher) optInt64(ctx context.Context, contract, method string, def int64) (int64, error) {
	value, err := f.chain.CallUint256(ctx, f.abi, contract, method)
	if err != nil {
		if errors.Is(err, domain.ErrCallFailed) {
			return def, nil
		}
		return 0, err
	}
	return value.Int64(), nil
}

func (f *fetcher) optBool(ctx context.Context, contract, method string, def bool) (bool, error) {
	value, err := f.chain.CallBool(ctx, f.abi, contract, method)
	if err != nil {
		if errors.Is(err, domain.ErrCallFailed) {
			return def, nil
		}
		return false, err
	}
	return value, nil
}

func (f *fetcher) optAddress(ctx context.Context, contract, method, def string) (string, error) {
	value, err := f.chain.CallAddress(ctx, f.abi, contract, method)
	if err != nil {
		if errors.Is(err, domain.ErrCallFailed) {
			return def, nil
		}
		return "", err
	}
	return value, nil
}

// fetchBase reads the attributes shared by every template. owner, name and
// symbol are mandatory.
func (f *fetcher) fetchBase(ctx context.Context, tokenAddress string, template domain.TokenTemplate, listing schema.Listing) (schema.TokenBase, error) {
	var base schema.TokenBase

	owner, err := f.chain.CallAddress(ctx, f.abi, tokenAddress, "owner")
	if err != nil {
		return base, fmt.Errorf("failed to read owner of %s: %w", tokenAddress, err)
	}
	name, err := f.chain.CallString(ctx, f.abi, tokenAddress, "name")
	if err != nil {
		return base, fmt.Errorf("failed to read name of %s: %w", tokenAddress, err)
	}
	symbol, err := f.chain.CallString(ctx, f.abi, tokenAddress, "symbol")
	if err != nil {
		return base, fmt.Errorf("failed to read symbol of %s: %w", tokenAddress, err)
	}

	totalSupply, err := f.optInt64(ctx, tokenAddress, "totalSupply", 0)
	if err != nil {
		return base, err
	}
	status, err := f.optBool(ctx, tokenAddress, "status", defaultBool)
	if err != nil {
		return base, err
	}
	tradableExchange, err := f.optAddress(ctx, tokenAddress, "tradableExchange", zeroAddress)
	if err != nil {
		return base, err
	}
	contactInformation, err := f.optString(ctx, tokenAddress, "contactInformation", defaultString)
	if err != nil {
		return base, err
	}
	privacyPolicy, err := f.optString(ctx, tokenAddress, "privacyPolicy", defaultString)
	if err != nil {
		return base, err
	}

	issuer := f.companies.Find(ctx, owner)

	return schema.TokenBase{
		TokenAddress:       tokenAddress,
		TokenTemplate:      template,
		OwnerAddress:       owner,
		CompanyName:        issuer.CorporateName,
		RSAPublicKey:       issuer.RSAPublicKey,
		Name:               name,
		Symbol:             symbol,
		TotalSupply:        totalSupply,
		TradableExchange:   tradableExchange,
		ContactInformation: contactInformation,
		PrivacyPolicy:      privacyPolicy,
		Status:             status,
		MaxHoldingQuantity: listing.MaxHoldingQuantity,
		MaxSellAmount:      listing.MaxSellAmount,
	}, nil
}

// fetchImageURLs reads the fixed image slots of membership and coupon tokens
func (f *fetcher) fetchImageURLs(ctx context.Context, tokenAddress string) (schema.ImageURLs, error) {
	urls := make(schema.ImageURLs, 0, imageURLSlots)
	for i := 0; i < imageURLSlots; i++ {
		value, err := f.chain.CallString(ctx, f.abi, tokenAddress, "image_urls", big.NewInt(int64(i)))
		if err != nil {
			if errors.Is(err, domain.ErrCallFailed) {
				value = defaultString
			} else {
				return nil, err
			}
		}
		urls = append(urls, schema.ImageURL{ID: i + 1, URL: value})
	}
	return urls, nil
}

// parseInterestPaymentDate decodes the interestPaymentDate contract attribute
// into its up-to-twelve MMDD entries. The on-chain value is a Python-style
// dict literal, so single quotes and capitalized booleans are normalized
// before decoding. Malformed values yield an empty map rather than an error.
func parseInterestPaymentDate(raw string) map[int]string {
	dates := map[int]string{}
	if strings.TrimSpace(raw) == "" {
		return dates
	}

	normalized := strings.NewReplacer(
		"'", `"`,
		"True", "true",
		"False", "false",
		"None", "null",
	).Replace(raw)

	var decoded map[string]string
	if err := json.Unmarshal([]byte(normalized), &decoded); err != nil {
		return dates
	}

	for i := 1; i <= 12; i++ {
		key := fmt.Sprintf("interestPaymentDate%d", i)
		if value, ok := decoded[key]; ok {
			dates[i] = value
		}
	}
	return dates
}
