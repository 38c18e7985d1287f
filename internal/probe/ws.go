package probe

import (
	"context"
	"fmt"
)

// probeWS performs the round trip over a fresh websocket connection. Each
// probe pays the handshake, mirroring what an RPC consumer opening a new
// subscription connection would see.
func (c *Client) probeWS(ctx context.Context, endpoint string) error {
	conn, resp, err := c.dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(deadline)
		_ = conn.SetWriteDeadline(deadline)
	}

	if err := conn.WriteJSON(headerRequest()); err != nil {
		return fmt.Errorf("write request: %w", err)
	}

	var reply rpcResponse
	if err := conn.ReadJSON(&reply); err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if reply.Error != nil {
		return reply.Error
	}
	return nil
}
