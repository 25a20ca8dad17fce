package generator

import "github.com/k-code-yt/ecommerce-dataset/internal/domain"

type state struct {
	code   string
	name   string
	cities []string
}

var states = []state{
	{"CA", "California", []string{"Los Angeles", "San Francisco", "San Diego"}},
	{"NY", "New York", []string{"New York", "Buffalo", "Rochester"}},
	{"TX", "Texas", []string{"Austin", "Houston", "Dallas"}},
	{"WA", "Washington", []string{"Seattle", "Spokane", "Tacoma"}},
	{"FL", "Florida", []string{"Miami", "Orlando", "Tampa"}},
	{"IL", "Illinois", []string{"Chicago", "Springfield", "Naperville"}},
	{"GA", "Georgia", []string{"Atlanta", "Savannah", "Augusta"}},
	{"PA", "Pennsylvania", []string{"Philadelphia", "Pittsburgh", "Harrisburg"}},
	{"CO", "Colorado", []string{"Denver", "Boulder", "Colorado Springs"}},
	{"NC", "North Carolina", []string{"Charlotte", "Raleigh", "Durham"}},
}

var countries = []string{"US", "CA", "GB", "AU"}

var categories = []string{"electronics", "apparel", "home", "beauty", "sports"}

// brands are only valid within their own category.
var brands = map[string][]string{
	"electronics": {"Luminex", "Voltify", "Auraline"},
	"apparel":     {"Northwind", "Ardor", "Fleetwear"},
	"home":        {"Hearthstone", "Everwood", "Nestico"},
	"beauty":      {"Bloomelle", "Variant", "Seren"},
	"sports":      {"Pinnacle", "Strive", "Aerolite"},
}

var (
	productPrefixes = []string{"Nova", "Echo", "Pulse", "Axis", "Terra"}
	productSuffixes = []string{"One", "Pro", "Max", "Mini", "Air"}
)

var firstNames = []string{
	"Ava", "Liam", "Noah", "Sophia", "Mason", "Isabella", "Logan", "Mia",
	"Ethan", "Olivia", "Lucas", "Harper", "Elijah", "Amelia", "James", "Emma",
}

var lastNames = []string{
	"Nguyen", "Patel", "Garcia", "Robinson", "Lee", "Kim", "Brown", "Davis",
	"Wilson", "Martinez", "Clark", "Lewis", "Young", "Hall", "Allen", "Torres",
}

var emailDomains = []string{"onelane.com", "novaio.net", "mailarrow.io", "quibly.co"}

var (
	streetNames    = []string{"Oak", "Maple", "Cedar", "Pine", "Elm"}
	streetSuffixes = []string{"Ave", "St", "Rd", "Blvd"}
)

// empty entries mean no coupon
var couponCodes = []string{"WELCOME10", "FREESHIP", "LOYAL20", "", ""}

var (
	tierWeights    = []float64{0.55, 0.25, 0.15, 0.05}
	statusWeights  = []float64{0.1, 0.25, 0.45, 0.15, 0.05}
	channelWeights = []float64{0.2, 0.1, 0.25, 0.25, 0.1, 0.1}
)

var itemTaxRates = []string{"0.05", "0.07", "0.08"}

var actors = domain.Actors
