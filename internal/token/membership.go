package token

import (
	"context"

	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/store/schema"
)

type membershipAdapter struct {
	fetcher
}

// Template returns the template this adapter handles
func (a *membershipAdapter) Template() domain.TokenTemplate {
	return domain.TemplateMembership
}

// Fetch reads every indexed attribute of a membership token
func (a *membershipAdapter) Fetch(ctx context.Context, tokenAddress string, listing schema.Listing) (schema.TokenDetail, error) {
	base, err := a.fetchBase(ctx, tokenAddress, domain.TemplateMembership, listing)
	if err != nil {
		return nil, err
	}

	membership := schema.MembershipToken{TokenBase: base}

	if membership.Details, err = a.optString(ctx, tokenAddress, "details", defaultString); err != nil {
		return nil, err
	}
	if membership.ReturnDetails, err = a.optString(ctx, tokenAddress, "returnDetails", defaultString); err != nil {
		return nil, err
	}
	if membership.ExpirationDate, err = a.optString(ctx, tokenAddress, "expirationDate", defaultString); err != nil {
		return nil, err
	}
	if membership.Memo, err = a.optString(ctx, tokenAddress, "memo", defaultString); err != nil {
		return nil, err
	}
	if membership.Transferable, err = a.optBool(ctx, tokenAddress, "transferable", defaultBool); err != nil {
		return nil, err
	}
	if membership.InitialOfferingStatus, err = a.optBool(ctx, tokenAddress, "initialOfferingStatus", defaultBool); err != nil {
		return nil, err
	}
	if membership.ImageURL, err = a.fetchImageURLs(ctx, tokenAddress); err != nil {
		return nil, err
	}

	return &membership, nil
}
