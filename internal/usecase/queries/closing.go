package queries

import (
	"context"

	"washbook/internal/domain/closing"
	"washbook/internal/pkg/clock"
)

// ClosingQueries serves the cash-closing summary and the per-washer
// commission breakdown. Both scan the same single-date ledger slice and
// reduce it in the domain; a nil date means "today" in the shop zone.
type ClosingQueries interface {
	CashClosing(ctx context.Context, date *string) (*closing.Summary, error)
	Commissions(ctx context.Context, date *string) (*closing.Breakdown, error)
}

type LedgerLineRepo interface {
	LinesByDate(ctx context.Context, date string) ([]closing.Line, error)
}

type closingQueriesImpl struct {
	repo      LedgerLineRepo
	shopClock *clock.ShopClock
}

func NewClosingQueries(repo LedgerLineRepo, shopClock *clock.ShopClock) ClosingQueries {
	return &closingQueriesImpl{repo: repo, shopClock: shopClock}
}

func (q *closingQueriesImpl) CashClosing(ctx context.Context, date *string) (*closing.Summary, error) {
	day := q.resolveDate(date)
	lines, err := q.repo.LinesByDate(ctx, day)
	if err != nil {
		return nil, err
	}
	summary := closing.Summarize(day, lines)
	return &summary, nil
}

func (q *closingQueriesImpl) Commissions(ctx context.Context, date *string) (*closing.Breakdown, error) {
	day := q.resolveDate(date)
	lines, err := q.repo.LinesByDate(ctx, day)
	if err != nil {
		return nil, err
	}
	breakdown := closing.CommissionsByWasher(day, lines)
	return &breakdown, nil
}

func (q *closingQueriesImpl) resolveDate(date *string) string {
	if date != nil && *date != "" {
		return *date
	}
	return q.shopClock.Today()
}
