package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/chargify-client/internal/constants"
	"github.com/fivetwenty-io/chargify-client/internal/http"
	"github.com/fivetwenty-io/chargify-client/pkg/chargify"
)

// getEntity fetches path and decodes the single entity rooted at rootKey.
func getEntity[T any, PT chargify.EntityPtr[T]](
	ctx context.Context, httpClient *http.Client, path string, query url.Values, rootKey, what string,
) (*T, error) {
	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", what, err)
	}

	entity, err := chargify.Decode[T, PT](resp.Body, rootKey)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", what, err)
	}

	return entity, nil
}

// sendEntity builds the request body, sends it with method and decodes the
// entity the API echoes back. Validation failures return before any I/O.
func sendEntity[T any, PT chargify.EntityPtr[T]](
	ctx context.Context, httpClient *http.Client, method, path string, req chargify.Request, rootKey, what string,
) (*T, error) {
	body, err := chargify.BuildBody(req)
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", what, err)
	}

	resp, err := httpClient.Do(ctx, &http.Request{
		Method: method,
		Path:   path,
		Body:   body,
	})
	if err != nil {
		return nil, fmt.Errorf("sending %s: %w", what, err)
	}

	entity, err := chargify.Decode[T, PT](resp.Body, rootKey)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", what, err)
	}

	return entity, nil
}

// listEntities fetches one page and decodes it into a map keyed by key.
func listEntities[K comparable, T any, PT chargify.EntityPtr[T]](
	ctx context.Context, httpClient *http.Client, path string, query url.Values,
	wrapper, item string, key func(*T) K,
) (map[K]T, error) {
	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", wrapper, err)
	}

	entities, err := chargify.DecodeList[K, T, PT](resp.Body, wrapper, item, key)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", wrapper, err)
	}

	return entities, nil
}

// listAllEntities walks pages until a short or empty page. Entries repeated
// across pages keep their first copy.
func listAllEntities[K comparable, T any, PT chargify.EntityPtr[T]](
	ctx context.Context, httpClient *http.Client, logger chargify.Logger, path string, params *chargify.ListParams,
	wrapper, item string, key func(*T) K,
) (map[K]T, error) {
	pageParams := chargify.ListParams{}
	if params != nil {
		pageParams = *params
	}

	if pageParams.PerPage == 0 {
		pageParams.PerPage = constants.ListAllPageSize
	}

	if pageParams.Page == 0 {
		pageParams.Page = 1
	}

	all := make(map[K]T)

	for range constants.MaxListAllPages {
		query, err := pageParams.Values()
		if err != nil {
			return nil, fmt.Errorf("building %s query: %w", wrapper, err)
		}

		page, err := listEntities[K, T, PT](ctx, httpClient, path, query, wrapper, item, key)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageParams.Page, err)
		}

		skipped := chargify.Merge(all, page)
		if skipped > 0 && logger != nil {
			logger.Debug("Skipped repeated entries while paging", map[string]interface{}{
				"resource": wrapper,
				"page":     pageParams.Page,
				"skipped":  skipped,
			})
		}

		if len(page) < pageParams.PerPage {
			break
		}

		pageParams.Page++
	}

	return all, nil
}

// deleteResource issues a DELETE without a body.
func deleteResource(ctx context.Context, httpClient *http.Client, path, what string) error {
	_, err := httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", what, err)
	}

	return nil
}

// requestOrNil turns a typed nil request pointer into a nil interface so
// BuildBody reports it as an invalid argument.
func requestOrNil[R any, PR interface {
	*R
	chargify.Request
}](req PR) chargify.Request {
	if req == nil {
		return nil
	}

	return req
}
