package token

import (
	"context"

	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/store/schema"
)

// interestRateUnit converts the on-chain integer interest rate into a
// decimal fraction: 602 on chain means 6.02%, stored as 0.0602
const interestRateUnit = 0.0001

type bondAdapter struct {
	fetcher
}

// Template returns the template this adapter handles
func (a *bondAdapter) Template() domain.TokenTemplate {
	return domain.TemplateStraightBond
}

// Fetch reads every indexed attribute of a straight bond token
func (a *bondAdapter) Fetch(ctx context.Context, tokenAddress string, listing schema.Listing) (schema.TokenDetail, error) {
	base, err := a.fetchBase(ctx, tokenAddress, domain.TemplateStraightBond, listing)
	if err != nil {
		return nil, err
	}

	bond := schema.BondToken{TokenBase: base}

	if bond.PersonalInfoAddress, err = a.optAddress(ctx, tokenAddress, "personalInfoAddress", zeroAddress); err != nil {
		return nil, err
	}
	if bond.Transferable, err = a.optBool(ctx, tokenAddress, "transferable", defaultBool); err != nil {
		return nil, err
	}
	if bond.IsOffering, err = a.optBool(ctx, tokenAddress, "isOffering", defaultBool); err != nil {
		return nil, err
	}
	if bond.TransferApprovalRequired, err = a.optBool(ctx, tokenAddress, "transferApprovalRequired", defaultBool); err != nil {
		return nil, err
	}
	if bond.FaceValue, err = a.optInt64(ctx, tokenAddress, "faceValue", 0); err != nil {
		return nil, err
	}

	rawRate, err := a.optInt64(ctx, tokenAddress, "interestRate", 0)
	if err != nil {
		return nil, err
	}
	bond.InterestRate = float64(rawRate) * interestRateUnit

	rawDates, err := a.optString(ctx, tokenAddress, "interestPaymentDate", defaultString)
	if err != nil {
		return nil, err
	}
	dates := parseInterestPaymentDate(rawDates)
	bond.InterestPaymentDate1 = dates[1]
	bond.InterestPaymentDate2 = dates[2]
	bond.InterestPaymentDate3 = dates[3]
	bond.InterestPaymentDate4 = dates[4]
	bond.InterestPaymentDate5 = dates[5]
	bond.InterestPaymentDate6 = dates[6]
	bond.InterestPaymentDate7 = dates[7]
	bond.InterestPaymentDate8 = dates[8]
	bond.InterestPaymentDate9 = dates[9]
	bond.InterestPaymentDate10 = dates[10]
	bond.InterestPaymentDate11 = dates[11]
	bond.InterestPaymentDate12 = dates[12]

	if bond.RedemptionDate, err = a.optString(ctx, tokenAddress, "redemptionDate", defaultString); err != nil {
		return nil, err
	}
	if bond.RedemptionValue, err = a.optInt64(ctx, tokenAddress, "redemptionValue", 0); err != nil {
		return nil, err
	}
	if bond.ReturnDate, err = a.optString(ctx, tokenAddress, "returnDate", defaultString); err != nil {
		return nil, err
	}
	if bond.ReturnAmount, err = a.optString(ctx, tokenAddress, "returnAmount", defaultString); err != nil {
		return nil, err
	}
	if bond.Purpose, err = a.optString(ctx, tokenAddress, "purpose", defaultString); err != nil {
		return nil, err
	}
	if bond.Memo, err = a.optString(ctx, tokenAddress, "memo", defaultString); err != nil {
		return nil, err
	}
	if bond.IsRedeemed, err = a.optBool(ctx, tokenAddress, "isRedeemed", defaultBool); err != nil {
		return nil, err
	}

	return &bond, nil
}
