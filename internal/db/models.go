package db

// Client is a managed client record, including the Stripe subscription
// bookkeeping fields written by the billing webhook.
type Client struct {
	ID                   string
	Name                 string
	Email                string
	Company              string
	Notes                string
	StripeCustomerID     string
	StripeSubscriptionID string
	SubscriptionStatus   string
	SubscriptionPlan     string
	CreatedAt            string
	UpdatedAt            string
}

// Strategy is a posting strategy attached to a client.
type Strategy struct {
	ID        string
	ClientID  string
	Title     string
	Cadence   string
	Channels  string
	Notes     string
	CreatedAt string
	UpdatedAt string
}

// Post is a scheduled post belonging to a client, optionally tied to a strategy.
type Post struct {
	ID           string
	ClientID     string
	StrategyID   string
	Title        string
	Body         string
	Channel      string
	ScheduledFor string
	Status       string
	CreatedAt    string
	UpdatedAt    string
}

// Post statuses.
const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
)

// StripeEvent records a processed webhook event id so redeliveries are
// recognized and skipped.
type StripeEvent struct {
	ID         string
	Type       string
	ReceivedAt string
}
