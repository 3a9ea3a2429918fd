package members

import "context"

// Repository persists the full member list. Save always receives every
// member, in store order, and replaces whatever was stored before.
type Repository interface {
	Load(ctx context.Context) ([]Member, error)
	Save(ctx context.Context, members []Member) error
}
