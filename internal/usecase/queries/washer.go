package queries

import "context"

type WasherQueries interface {
	ListActive(ctx context.Context) ([]*WasherView, error)
}

type WasherViewRepo interface {
	FindActive(ctx context.Context) ([]*WasherView, error)
}

type washerQueriesImpl struct {
	repo WasherViewRepo
}

func NewWasherQueries(repo WasherViewRepo) WasherQueries {
	return &washerQueriesImpl{repo: repo}
}

func (q *washerQueriesImpl) ListActive(ctx context.Context) ([]*WasherView, error) {
	return q.repo.FindActive(ctx)
}
