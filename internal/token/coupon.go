package token

import (
	"context"

	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/store/schema"
)

type couponAdapter struct {
	fetcher
}

// Template returns the template this adapter handles
func (a *couponAdapter) Template() domain.TokenTemplate {
	return domain.TemplateCoupon
}

// Fetch reads every indexed attribute of a coupon token
func (a *couponAdapter) Fetch(ctx context.Context, tokenAddress string, listing schema.Listing) (schema.TokenDetail, error) {
	base, err := a.fetchBase(ctx, tokenAddress, domain.TemplateCoupon, listing)
	if err != nil {
		return nil, err
	}

	coupon := schema.CouponToken{TokenBase: base}

	if coupon.Details, err = a.optString(ctx, tokenAddress, "details", defaultString); err != nil {
		return nil, err
	}
	if coupon.ReturnDetails, err = a.optString(ctx, tokenAddress, "returnDetails", defaultString); err != nil {
		return nil, err
	}
	if coupon.ExpirationDate, err = a.optString(ctx, tokenAddress, "expirationDate", defaultString); err != nil {
		return nil, err
	}
	if coupon.Memo, err = a.optString(ctx, tokenAddress, "memo", defaultString); err != nil {
		return nil, err
	}
	if coupon.Transferable, err = a.optBool(ctx, tokenAddress, "transferable", defaultBool); err != nil {
		return nil, err
	}
	if coupon.InitialOfferingStatus, err = a.optBool(ctx, tokenAddress, "initialOfferingStatus", defaultBool); err != nil {
		return nil, err
	}
	if coupon.ImageURL, err = a.fetchImageURLs(ctx, tokenAddress); err != nil {
		return nil, err
	}

	return &coupon, nil
}
