package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	want := time.Date(2024, 7, 4, 13, 5, 9, 250000000, time.UTC)
	for _, in := range []string{
		"2024-07-04T13:05:09.25Z",
		"2024-07-04T15:05:09.25+02:00",
		"2024-07-04T13:05:09.25",
		"2024-07-04 13:05:09.25",
		" 2024-07-04 13:05:09.25+00:00 ",
	} {
		got, err := ParseTime(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s -> %s", in, got)
		assert.Equal(t, time.UTC, got.Location())
	}

	_, err := ParseTime("04/07/2024")
	assert.Error(t, err)
}

func TestFormatTimeRoundTrip(t *testing.T) {
	in := time.Date(2023, 1, 2, 3, 4, 5, 678901000, time.FixedZone("EST", -5*3600))
	out, err := ParseTime(FormatTime(in))
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
	assert.Equal(t, "2023-01-02T08:04:05.678901Z", FormatTime(in))
}

func TestEnums(t *testing.T) {
	assert.True(t, LoyaltyTier_Gold.Valid())
	assert.False(t, LoyaltyTier("diamond").Valid())
	assert.Less(t, LoyaltyTier_Silver.Rank(), LoyaltyTier_Platinum.Rank())

	assert.True(t, OrderStatus_Returned.Negative())
	assert.True(t, OrderStatus_Cancelled.Negative())
	assert.False(t, OrderStatus_Shipped.Negative())

	assert.Equal(t, 1.0, Sentiment_Positive.Score())
	assert.Equal(t, 0.0, Sentiment_Neutral.Score())
	assert.Equal(t, -1.0, Sentiment_Negative.Score())

	assert.Equal(t, []string{"email", "sms", "social", "paid_search", "affiliate", "organic"}, Strings(Channels))
	assert.False(t, Channel("").Valid())
}

func TestOrderTotalsDelta(t *testing.T) {
	o := Order{
		Subtotal:     decimal.RequireFromString("100"),
		ShippingCost: decimal.RequireFromString("5"),
		TaxAmount:    decimal.RequireFromString("8"),
		TotalAmount:  decimal.RequireFromString("200"),
	}
	assert.True(t, decimal.NewFromInt(87).Equal(o.TotalsDelta()))

	it := OrderItem{Quantity: 3, UnitPrice: decimal.RequireFromString("19.99"), DiscountAmount: decimal.RequireFromString("2.00")}
	assert.True(t, decimal.RequireFromString("53.97").Equal(it.ExpectedLineTotal()))
}
