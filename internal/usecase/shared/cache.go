package shared

import "context"

//go:generate mockgen -source=cache.go -destination=../../../tests/mock/shared/cache.go -package=sharedmock

// ViewCache drops whatever was rendered for a path so the next read is fresh.
type ViewCache interface {
	Revalidate(ctx context.Context, path string)
}

// Paths whose rendered views are cached and revalidated after mutations.
const (
	DashboardPath = "/dashboard"
	InvoicesPath  = "/dashboard/invoices"
)
