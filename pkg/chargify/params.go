package chargify

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"
)

// MaxPerPage is the largest page size the remote API accepts.
const MaxPerPage = 200

var queryEncoder = schema.NewEncoder()

// ListParams holds the paging and filtering options shared by list calls.
// Zero fields are left out of the query string.
type ListParams struct {
	Page      int    `schema:"page,omitempty"`
	PerPage   int    `schema:"per_page,omitempty"`
	State     string `schema:"state,omitempty"`
	Direction string `schema:"direction,omitempty"`
	Query     string `schema:"q,omitempty"`
}

// Validate checks the paging fields.
func (p *ListParams) Validate() error {
	switch {
	case p.Page < 0:
		return invalid("page", "must not be negative")
	case p.PerPage < 0 || p.PerPage > MaxPerPage:
		return invalid("per_page", fmt.Sprintf("must be between 1 and %d", MaxPerPage))
	case p.Direction != "" && p.Direction != "asc" && p.Direction != "desc":
		return invalid("direction", `must be "asc" or "desc"`)
	}

	return nil
}

// Values encodes the parameters as a query string. A nil receiver yields
// empty values.
func (p *ListParams) Values() (url.Values, error) {
	if p == nil {
		return url.Values{}, nil
	}

	err := p.Validate()
	if err != nil {
		return nil, err
	}

	return encodeQuery(p)
}

// TransactionListParams filters a transaction listing. Dates use the
// YYYY-MM-DD form.
type TransactionListParams struct {
	ListParams

	Kinds     []string `schema:"kinds[],omitempty"`
	SinceID   int      `schema:"since_id,omitempty"`
	MaxID     int      `schema:"max_id,omitempty"`
	SinceDate string   `schema:"since_date,omitempty"`
	UntilDate string   `schema:"until_date,omitempty"`
}

// Values encodes the parameters as a query string. A nil receiver yields
// empty values.
func (p *TransactionListParams) Values() (url.Values, error) {
	if p == nil {
		return url.Values{}, nil
	}

	err := p.Validate()
	if err != nil {
		return nil, err
	}

	for _, kind := range p.Kinds {
		if ParseTransactionType(kind) == TransactionTypeUnknown {
			return nil, invalid("kinds", fmt.Sprintf("unknown transaction kind %q", kind))
		}
	}

	return encodeQuery(p)
}

func encodeQuery(src any) (url.Values, error) {
	values := url.Values{}

	err := queryEncoder.Encode(src, values)
	if err != nil {
		return nil, fmt.Errorf("encoding query parameters: %w", err)
	}

	return values, nil
}
