package queries

import (
	"context"

	"washbook/internal/pkg/errs"
)

var ErrUserNotFound = errs.New("user not found")

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID int64) (*AuthorizedUserView, error)
}

type UserViewRepo interface {
	FindByID(ctx context.Context, id int64) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	repo UserViewRepo
}

func NewUserQueries(repo UserViewRepo) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID int64) (*AuthorizedUserView, error) {
	view, err := q.repo.FindByID(ctx, userID)
	if err != nil || view == nil {
		return nil, ErrUserNotFound
	}
	if !view.IsActive {
		return nil, ErrUserNotFound
	}
	return view, nil
}
