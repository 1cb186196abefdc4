package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// Client calls the API with an optional bearer token.
type Client struct {
	httpClient connect.HTTPClient
	baseURL    string
	token      string
}

// NewClient creates a client for the server at baseURL. A nil httpClient
// uses http.DefaultClient.
func NewClient(httpClient connect.HTTPClient, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}

// WithToken returns a copy of c that authenticates with token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// Call invokes a unary procedure and returns its response message.
func Call[Req, Res any](ctx context.Context, c *Client, procedure string, req *Req) (*Res, error) {
	client := connect.NewClient[Req, Res](c.httpClient, c.baseURL+procedure, WithCodec())

	request := connect.NewRequest(req)
	if c.token != "" {
		request.Header().Set("Authorization", "Bearer "+c.token)
	}

	resp, err := client.CallUnary(ctx, request)
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}
