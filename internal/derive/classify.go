// Package derive computes every field that is a function of other records:
// order totals, customer classification, KPIs and inventory deltas.
package derive

import (
	"github.com/k-code-yt/ecommerce-dataset/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	sentimentNegativeRatio = decimal.RequireFromString("0.25")
	sentimentNeutralRatio  = decimal.RequireFromString("0.10")

	bucketMediumFloor = decimal.NewFromInt(500)
	bucketHighFloor   = decimal.NewFromInt(2000)

	tierSilverAbove   = decimal.NewFromInt(1000)
	tierGoldAbove     = decimal.NewFromInt(2000)
	tierPlatinumAbove = decimal.NewFromInt(4000)
)

// Sentiment classifies a customer from the negative-outcome ratio observed so
// far. orders includes the order being classified.
func Sentiment(negativeEvents, orders int) domain.Sentiment {
	if orders < 1 {
		orders = 1
	}
	ratio := decimal.NewFromInt(int64(negativeEvents)).Div(decimal.NewFromInt(int64(orders)))
	switch {
	case ratio.GreaterThan(sentimentNegativeRatio):
		return domain.Sentiment_Negative
	case ratio.GreaterThan(sentimentNeutralRatio):
		return domain.Sentiment_Neutral
	default:
		return domain.Sentiment_Positive
	}
}

func LifetimeValueBucket(spend decimal.Decimal) domain.LifetimeValueBucket {
	switch {
	case spend.LessThan(bucketMediumFloor):
		return domain.LifetimeValueBucket_Low
	case spend.LessThan(bucketHighFloor):
		return domain.LifetimeValueBucket_Medium
	default:
		return domain.LifetimeValueBucket_High
	}
}

// LoyaltyTier promotes on cumulative spend; below every threshold the current
// tier is kept as sampled.
func LoyaltyTier(spend decimal.Decimal, current domain.LoyaltyTier) domain.LoyaltyTier {
	switch {
	case spend.GreaterThan(tierPlatinumAbove):
		return domain.LoyaltyTier_Platinum
	case spend.GreaterThan(tierGoldAbove):
		return domain.LoyaltyTier_Gold
	case spend.GreaterThan(tierSilverAbove):
		return domain.LoyaltyTier_Silver
	default:
		return current
	}
}
