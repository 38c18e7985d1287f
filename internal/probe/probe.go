package probe

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
)

// rpcRequest is the JSON-RPC 2.0 envelope sent on every probe.
type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// rpcResponse captures only the error member of a reply; the result payload
// is irrelevant for timing purposes.
type rpcResponse struct {
	Error *rpcError `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// headerRequest asks for the latest block header. The response cannot be
// served from an HTTP cache and changes every few seconds, so each probe
// pays a full round trip.
func headerRequest() rpcRequest {
	return rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "eth_getBlockByNumber",
		Params:  []any{"latest", false},
	}
}

// Client probes JSON-RPC endpoints over HTTP(S) and WS(S).
type Client struct {
	http   *http.Client
	dialer *websocket.Dialer
}

// New creates a new Client
func New() *Client {
	return &Client{
		http: &http.Client{},
		dialer: &websocket.Dialer{
			Proxy: http.ProxyFromEnvironment,
		},
	}
}

// Probe performs one round trip against endpoint, dispatching on the URL
// scheme. Cancelling ctx unblocks the call.
func (c *Client) Probe(ctx context.Context, endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("parse endpoint: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return c.probeHTTP(ctx, endpoint)
	case "ws", "wss":
		return c.probeWS(ctx, endpoint)
	default:
		return fmt.Errorf("unsupported endpoint scheme %q", u.Scheme)
	}
}
