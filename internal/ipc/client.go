package ipc

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

// Client provides RPC access to the daemon.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// Dial connects to the IPC server at the given socket path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, 2*time.Second)
	if err != nil {
		return nil, err
	}
	rpcClient := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	return &Client{conn: conn, client: rpcClient}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		_ = c.client.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Ping checks that the daemon answers over the socket.
func (c *Client) Ping() (*PingResponse, error) {
	var resp PingResponse
	if err := c.client.Call("Mailbox.Ping", PingRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stop asks the daemon process to shut down.
func (c *Client) Stop() (*StopResponse, error) {
	var resp StopResponse
	if err := c.client.Call("Mailbox.Stop", StopRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Status retrieves the daemon status.
func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.client.Call("Mailbox.Status", StatusRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Post inserts a notification into the mailbox.
func (c *Client) Post(n Notification) (*PostResponse, error) {
	var resp PostResponse
	if err := c.client.Call("Mailbox.Post", PostRequest{Notification: n}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Dismiss removes a notification by id.
func (c *Client) Dismiss(id string) (*DismissResponse, error) {
	var resp DismissResponse
	if err := c.client.Call("Mailbox.Dismiss", DismissRequest{ID: id}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Amend replaces the payload of an existing notification.
func (c *Client) Amend(n Notification) (*AmendResponse, error) {
	var resp AmendResponse
	if err := c.client.Call("Mailbox.Amend", AmendRequest{Notification: n}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns the mailbox contents in insertion order.
func (c *Client) List() (*ListResponse, error) {
	var resp ListResponse
	if err := c.client.Call("Mailbox.List", ListRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// History returns recent journal events, newest first.
func (c *Client) History(limit int) (*HistoryResponse, error) {
	var resp HistoryResponse
	if err := c.client.Call("Mailbox.History", HistoryRequest{Limit: limit}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LogTail returns log lines from the daemon.
func (c *Client) LogTail(req LogTailRequest) (*LogTailResponse, error) {
	var resp LogTailResponse
	if err := c.client.Call("Mailbox.LogTail", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
