package domain

type LoyaltyTier string

const (
	LoyaltyTier_Bronze   LoyaltyTier = "bronze"
	LoyaltyTier_Silver   LoyaltyTier = "silver"
	LoyaltyTier_Gold     LoyaltyTier = "gold"
	LoyaltyTier_Platinum LoyaltyTier = "platinum"
)

// LoyaltyTiers is ordered from lowest to highest.
var LoyaltyTiers = []LoyaltyTier{LoyaltyTier_Bronze, LoyaltyTier_Silver, LoyaltyTier_Gold, LoyaltyTier_Platinum}

func (t LoyaltyTier) Rank() int {
	for i, v := range LoyaltyTiers {
		if v == t {
			return i
		}
	}
	return -1
}

func (t LoyaltyTier) Valid() bool { return t.Rank() >= 0 }

type LifetimeValueBucket string

const (
	LifetimeValueBucket_Low    LifetimeValueBucket = "low"
	LifetimeValueBucket_Medium LifetimeValueBucket = "medium"
	LifetimeValueBucket_High   LifetimeValueBucket = "high"
)

var LifetimeValueBuckets = []LifetimeValueBucket{LifetimeValueBucket_Low, LifetimeValueBucket_Medium, LifetimeValueBucket_High}

func (b LifetimeValueBucket) Valid() bool { return contains(LifetimeValueBuckets, b) }

type OrderStatus string

const (
	OrderStatus_Pending   OrderStatus = "pending"
	OrderStatus_Shipped   OrderStatus = "shipped"
	OrderStatus_Delivered OrderStatus = "delivered"
	OrderStatus_Cancelled OrderStatus = "cancelled"
	OrderStatus_Returned  OrderStatus = "returned"
)

var OrderStatuses = []OrderStatus{OrderStatus_Pending, OrderStatus_Shipped, OrderStatus_Delivered, OrderStatus_Cancelled, OrderStatus_Returned}

func (s OrderStatus) Valid() bool { return contains(OrderStatuses, s) }

// Negative reports whether the status counts against customer sentiment.
func (s OrderStatus) Negative() bool {
	return s == OrderStatus_Cancelled || s == OrderStatus_Returned
}

type Channel string

const (
	Channel_Email      Channel = "email"
	Channel_SMS        Channel = "sms"
	Channel_Social     Channel = "social"
	Channel_PaidSearch Channel = "paid_search"
	Channel_Affiliate  Channel = "affiliate"
	Channel_Organic    Channel = "organic"
)

var Channels = []Channel{Channel_Email, Channel_SMS, Channel_Social, Channel_PaidSearch, Channel_Affiliate, Channel_Organic}

func (c Channel) Valid() bool { return contains(Channels, c) }

type Sentiment string

const (
	Sentiment_Positive Sentiment = "positive"
	Sentiment_Neutral  Sentiment = "neutral"
	Sentiment_Negative Sentiment = "negative"
)

var Sentiments = []Sentiment{Sentiment_Positive, Sentiment_Neutral, Sentiment_Negative}

func (s Sentiment) Valid() bool { return contains(Sentiments, s) }

// Score maps a sentiment to +1, 0 or -1.
func (s Sentiment) Score() float64 {
	switch s {
	case Sentiment_Positive:
		return 1
	case Sentiment_Neutral:
		return 0
	default:
		return -1
	}
}

type EventType string

const (
	EventType_Restock    EventType = "restock"
	EventType_Sale       EventType = "sale"
	EventType_Return     EventType = "return"
	EventType_Adjustment EventType = "adjustment"
)

var EventTypes = []EventType{EventType_Restock, EventType_Sale, EventType_Return, EventType_Adjustment}

func (e EventType) Valid() bool { return contains(EventTypes, e) }

type Actor string

const (
	Actor_System       Actor = "system"
	Actor_WarehouseBot Actor = "warehouse_bot"
	Actor_Associate    Actor = "associate"
	Actor_Vendor       Actor = "vendor"
)

var Actors = []Actor{Actor_System, Actor_WarehouseBot, Actor_Associate, Actor_Vendor}

func (a Actor) Valid() bool { return contains(Actors, a) }

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Strings converts an enum set to its string values, used for CHECK constraints.
func Strings[T ~string](set []T) []string {
	out := make([]string, len(set))
	for i, v := range set {
		out[i] = string(v)
	}
	return out
}
