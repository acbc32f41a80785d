package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) ListUniversities(ctx context.Context, q UniversityQuery) (*UniversityPage, error) {
	var out UniversityPage
	if err := c.call(ctx, "list_universities", http.MethodGet, "/universities", q.Values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUniversity(ctx context.Context, id int) (*University, error) {
	var out University
	if err := c.call(ctx, "get_university", http.MethodGet, "/universities/"+strconv.Itoa(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCountries(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.call(ctx, "list_countries", http.MethodGet, "/universities/countries/list", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListStrengths(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.call(ctx, "list_strengths", http.MethodGet, "/universities/strengths/list", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetInternationalUniversity fetches one non-US university. Each region has
// its own schema, so the body is returned undecoded.
func (c *Client) GetInternationalUniversity(ctx context.Context, region Region, id string) (json.RawMessage, error) {
	if !region.IsValid() {
		return nil, newAPIError(ErrorBadRequest, "get_international_university", 0, fmt.Sprintf("unknown region %q", region), nil)
	}
	var out json.RawMessage
	path := fmt.Sprintf("/international/%s/%s", region, url.PathEscape(id))
	if err := c.call(ctx, "get_international_university", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
