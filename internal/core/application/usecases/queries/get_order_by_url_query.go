package queries

import (
	"errors"

	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrGetOrderByURLQueryIsNotConstructed = errors.New(
	"GetOrderByURLQuery must be created via NewGetOrderByURLQuery constructor",
)

// GetOrderByURLQuery retrieves the public pickup view of an order by its URL
// token. Serves the unauthenticated pickup page; an unknown, mistyped or
// deleted token yields the same not-found answer.
type GetOrderByURLQuery struct { //nolint:recvcheck //using for validation
	url string

	guard guard.ConstructorGuard
}

// NewGetOrderByURLQuery creates a query for a public order lookup.
func NewGetOrderByURLQuery(url string) (GetOrderByURLQuery, error) {
	query := GetOrderByURLQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setURL(url); err != nil {
		return GetOrderByURLQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByURLQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByURLQueryIsNotConstructed)
}

// URL returns the public token being resolved.
func (q GetOrderByURLQuery) URL() string {
	return q.url
}

func (q *GetOrderByURLQuery) setURL(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("url")
	}

	q.url = url
	return nil
}
