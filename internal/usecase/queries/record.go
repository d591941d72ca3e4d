package queries

import (
	"context"
)

// ListLimit caps history responses to keep payloads bounded.
const ListLimit = 100

// ListFilter narrows the history listing. The date range only applies when
// both bounds are present; Plate matches partially and case-insensitively.
type ListFilter struct {
	DateFrom *string
	DateTo   *string
	Plate    *string
}

func (f ListFilter) HasDateRange() bool {
	return f.DateFrom != nil && f.DateTo != nil
}

type RecordQueries interface {
	List(ctx context.Context, filter ListFilter) ([]*RecordListItem, error)
}

type RecordViewRepo interface {
	Search(ctx context.Context, filter ListFilter, limit int32) ([]*RecordListItem, error)
}

type recordQueriesImpl struct {
	repo RecordViewRepo
}

func NewRecordQueries(repo RecordViewRepo) RecordQueries {
	return &recordQueriesImpl{repo: repo}
}

func (q *recordQueriesImpl) List(ctx context.Context, filter ListFilter) ([]*RecordListItem, error) {
	return q.repo.Search(ctx, filter, ListLimit)
}
