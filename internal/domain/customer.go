package domain

import (
	"time"
)

type Customer struct {
	ID                  string              `db:"customer_id"`
	FirstName           string              `db:"first_name"`
	LastName            string              `db:"last_name"`
	Email               string              `db:"email"`
	Phone               string              `db:"phone"`
	CreatedAt           time.Time           `db:"created_at"`
	MarketingOptIn      bool                `db:"marketing_opt_in"`
	LoyaltyTier         LoyaltyTier         `db:"loyalty_tier"`
	LifetimeValueBucket LifetimeValueBucket `db:"lifetime_value_bucket"`
}
