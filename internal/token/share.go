package token

import (
	"context"
	"errors"
	"math/big"

	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/store/schema"
)

// dividendUnit converts the on-chain integer dividend into a decimal amount:
// 125 on chain means a dividend of 1.25
const dividendUnit = 0.01

type shareAdapter struct {
	fetcher
}

// Template returns the template this adapter handles
func (a *shareAdapter) Template() domain.TokenTemplate {
	return domain.TemplateShare
}

// Fetch reads every indexed attribute of a share token
func (a *shareAdapter) Fetch(ctx context.Context, tokenAddress string, listing schema.Listing) (schema.TokenDetail, error) {
	base, err := a.fetchBase(ctx, tokenAddress, domain.TemplateShare, listing)
	if err != nil {
		return nil, err
	}

	share := schema.ShareToken{TokenBase: base}

	if share.PersonalInfoAddress, err = a.optAddress(ctx, tokenAddress, "personalInfoAddress", zeroAddress); err != nil {
		return nil, err
	}
	if share.Transferable, err = a.optBool(ctx, tokenAddress, "transferable", defaultBool); err != nil {
		return nil, err
	}
	if share.IsOffering, err = a.optBool(ctx, tokenAddress, "isOffering", defaultBool); err != nil {
		return nil, err
	}
	if share.TransferApprovalRequired, err = a.optBool(ctx, tokenAddress, "transferApprovalRequired", defaultBool); err != nil {
		return nil, err
	}
	if share.IssuePrice, err = a.optInt64(ctx, tokenAddress, "issuePrice", 0); err != nil {
		return nil, err
	}
	if share.PrincipalValue, err = a.optInt64(ctx, tokenAddress, "principalValue", 0); err != nil {
		return nil, err
	}
	if share.CancellationDate, err = a.optString(ctx, tokenAddress, "cancellationDate", defaultString); err != nil {
		return nil, err
	}
	if share.IsCanceled, err = a.optBool(ctx, tokenAddress, "isCanceled", defaultBool); err != nil {
		return nil, err
	}

	dividend, err := a.fetchDividendInformation(ctx, tokenAddress)
	if err != nil {
		return nil, err
	}
	share.DividendInformation = dividend

	if share.Memo, err = a.optString(ctx, tokenAddress, "memo", defaultString); err != nil {
		return nil, err
	}

	return &share, nil
}

// fetchDividendInformation reads the three-part dividendInformation tuple,
// substituting an empty record when the call fails on chain
func (a *shareAdapter) fetchDividendInformation(ctx context.Context, tokenAddress string) (schema.DividendInformation, error) {
	var info schema.DividendInformation

	values, err := a.chain.Call(ctx, a.abi, tokenAddress, "dividendInformation")
	if err != nil {
		if errors.Is(err, domain.ErrCallFailed) {
			return info, nil
		}
		return info, err
	}
	if len(values) != 3 {
		return info, nil
	}

	if dividends, ok := values[0].(*big.Int); ok {
		info.Dividends = float64(dividends.Int64()) * dividendUnit
	}
	if recordDate, ok := values[1].(string); ok {
		info.DividendRecordDate = recordDate
	}
	if paymentDate, ok := values[2].(string); ok {
		info.DividendPaymentDate = paymentDate
	}
	return info, nil
}
