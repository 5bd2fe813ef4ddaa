// Package rest implements the resource store over the hosted store's REST
// (PostgREST) interface.
package rest

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"resource-catalog-service/internal/domain"
	"resource-catalog-service/internal/infra/store"
)

// BasePath is the REST API prefix of the hosted store.
const BasePath = "/rest/v1/"

// searchColumns are matched by the search clause, in order.
var searchColumns = []string{"title", "description", "subject"}

// Client implements domain.ResourceStore over HTTP.
type Client struct {
	name   string
	table  string
	client *resty.Client
	cb     *gobreaker.CircuitBreaker[*resty.Response]
	logger *zap.Logger
}

// New creates a new REST store client.
func New(cfg store.ClientConfig, logger *zap.Logger) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	table := cfg.Table
	if table == "" {
		table = "resources"
	}

	return &Client{
		name:   "rest",
		table:  table,
		client: store.NewRestyClient(cfg),
		cb:     store.NewCircuitBreaker[*resty.Response]("store_rest", cfg.CB, logger),
		logger: logger,
	}
}

// Name returns the driver identifier.
func (c *Client) Name() string {
	return c.name
}

// Endpoint returns the table path relative to the base URL.
func (c *Client) Endpoint() string {
	return BasePath + c.table
}

// List retrieves the resources matching q, newest first.
func (c *Client) List(ctx context.Context, q domain.Query) ([]*domain.Resource, error) {
	var rows []Row

	_, err := c.cb.Execute(func() (*resty.Response, error) {
		var apiErr APIError
		r, err := c.client.R().
			SetContext(ctx).
			SetQueryParamsFromValues(QueryParams(q)).
			SetResult(&rows).
			SetError(&apiErr).
			Get(c.Endpoint())
		if err != nil {
			return nil, err
		}
		if r.IsError() {
			return nil, statusError(r.StatusCode(), apiErr)
		}

		return r, nil
	})
	if err != nil {
		c.logger.Warn("store list failed",
			zap.Error(err),
			zap.String("state", c.cb.State().String()),
		)

		return nil, fmt.Errorf("listing resources: %w", err)
	}

	resources := make([]*domain.Resource, 0, len(rows))
	for i := range rows {
		resources = append(resources, rows[i].ToDomain())
	}

	c.logger.Debug("store list completed",
		zap.Int("count", len(resources)),
		zap.String("kind", string(q.Kind)),
		zap.String("search", q.Search),
	)

	return resources, nil
}

// HealthCheck verifies the store answers an authenticated one-row read.
func (c *Client) HealthCheck(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("select", "id").
		SetQueryParam("limit", "1").
		Get(c.Endpoint())
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("health check returned status %d", resp.StatusCode())
	}

	return nil
}

// QueryParams translates q into the store's query string.
//
//	type=eq.VIDEO&subject=eq.React&level=eq.Débutant
//	or=(title.ilike."*q*",description.ilike."*q*",subject.ilike."*q*")
//
// Top-level parameters are ANDed by the store, so the search OR-group
// narrows the facet filters instead of replacing them.
func QueryParams(q domain.Query) url.Values {
	v := url.Values{}
	v.Set("select", "*")
	v.Set("order", "created_at.desc")

	if q.Kind != "" {
		v.Set("type", "eq."+string(q.Kind))
	}
	if q.Subject != "" {
		v.Set("subject", "eq."+q.Subject)
	}
	if q.Level != "" {
		v.Set("level", "eq."+q.Level)
	}
	if q.Search != "" {
		v.Set("or", searchClause(q.Search))
	}

	return v
}

// searchClause builds the OR-group matching search as a substring of every
// search column.
func searchClause(search string) string {
	pattern := quote("*" + escapeLike(search) + "*")

	parts := make([]string, len(searchColumns))
	for i, col := range searchColumns {
		parts[i] = col + ".ilike." + pattern
	}

	return "(" + strings.Join(parts, ",") + ")"
}

// escapeLike escapes the LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// quote wraps s in double quotes so commas and parentheses survive the
// store's filter grammar.
func quote(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}

func statusError(status int, apiErr APIError) error {
	if apiErr.Message != "" {
		return fmt.Errorf("store returned status %d: %s", status, apiErr.Message)
	}

	return fmt.Errorf("store returned status %d", status)
}
