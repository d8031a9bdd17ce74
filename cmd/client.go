// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/communityhub/portal/internal/identity"
)

// apiError is a non 2xx answer from the portal API.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// apiClient calls the portal HTTP API as the identity given on the command line.
type apiClient struct {
	endpoint   string
	identityID string
	token      string
	http       *http.Client
}

func newAPIClient(endpoint, identityID, token string) *apiClient {
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	return &apiClient{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		identityID: identityID,
		token:      token,
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   30 * time.Second,
		},
	}
}

func getClient() *apiClient {
	return newAPIClient(httpEndpoint, identityID, bearerToken)
}

func (c *apiClient) do(ctx context.Context, method, path string, query url.Values) (*http.Response, error) {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, err
	}
	if c.identityID != "" {
		req.Header.Set(identity.HeaderName, c.identityID)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()

		var body struct {
			Error string `json:"error"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		if json.Unmarshal(raw, &body) != nil || body.Error == "" {
			body.Error = strings.TrimSpace(string(raw))
		}
		return nil, &apiError{Status: resp.StatusCode, Message: body.Error}
	}

	return resp, nil
}

// getJSON decodes the response of method path into out.
func (c *apiClient) getJSON(ctx context.Context, method, path string, query url.Values, out interface{}) error {
	resp, err := c.do(ctx, method, path, query)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// download copies the response body of a GET to w.
func (c *apiClient) download(ctx context.Context, path string, query url.Values, w io.Writer) (int64, error) {
	resp, err := c.do(ctx, http.MethodGet, path, query)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return io.Copy(w, resp.Body)
}
