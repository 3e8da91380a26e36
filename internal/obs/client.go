package obs

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/genricoloni/displayfollow/internal/domain"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	opHello           = 0
	opIdentify        = 1
	opIdentified      = 2
	opEvent           = 5
	opRequest         = 6
	opRequestResponse = 7

	rpcVersion = 1

	// Scenes | Inputs | Transitions | SceneItems
	eventSubscriptions = 4 | 8 | 16 | 128

	handshakeTimeout = 10 * time.Second
)

// ErrNotConnected is returned by Call before Connect succeeds or after the connection drops
var ErrNotConnected = errors.New("not connected to obs-websocket")

// RequestError is a request OBS answered with a failed status
type RequestError struct {
	RequestType string
	Code        int
	Comment     string
}

func (e *RequestError) Error() string {
	if e.Comment == "" {
		return fmt.Sprintf("obs request %s failed with code %d", e.RequestType, e.Code)
	}
	return fmt.Sprintf("obs request %s failed with code %d: %s", e.RequestType, e.Code, e.Comment)
}

type message struct {
	Op int             `json:"op"`
	D  json.RawMessage `json:"d"`
}

type hello struct {
	ObsWebSocketVersion string `json:"obsWebSocketVersion"`
	RPCVersion          int    `json:"rpcVersion"`
	Authentication      *struct {
		Challenge string `json:"challenge"`
		Salt      string `json:"salt"`
	} `json:"authentication,omitempty"`
}

type identify struct {
	RPCVersion         int    `json:"rpcVersion"`
	Authentication     string `json:"authentication,omitempty"`
	EventSubscriptions int    `json:"eventSubscriptions"`
}

type request struct {
	RequestType string `json:"requestType"`
	RequestID   string `json:"requestId"`
	RequestData any    `json:"requestData,omitempty"`
}

type response struct {
	RequestType   string `json:"requestType"`
	RequestID     string `json:"requestId"`
	RequestStatus struct {
		Result  bool   `json:"result"`
		Code    int    `json:"code"`
		Comment string `json:"comment"`
	} `json:"requestStatus"`
	ResponseData json.RawMessage `json:"responseData"`
}

// Client speaks obs-websocket v5 over a single connection.
// Requests may be issued concurrently; responses are matched by request id.
type Client struct {
	logger   *zap.Logger
	url      string
	password string
	dialer   *websocket.Dialer

	writeMu sync.Mutex

	mu      sync.Mutex
	conn    *websocket.Conn
	pending map[string]chan response
	done    chan struct{}
}

// NewClient creates a client for the configured endpoint
func NewClient(logger *zap.Logger, cfg domain.Config) *Client {
	return &Client{
		logger:   logger,
		url:      cfg.GetOBSURL(),
		password: cfg.GetOBSPassword(),
		dialer: &websocket.Dialer{
			HandshakeTimeout: handshakeTimeout,
		},
		pending: make(map[string]chan response),
	}
}

// AuthString computes the Identify authentication value for a Hello challenge
func AuthString(password, salt, challenge string) string {
	secret := sha256.Sum256([]byte(password + salt))
	secretB64 := base64.StdEncoding.EncodeToString(secret[:])
	auth := sha256.Sum256([]byte(secretB64 + challenge))
	return base64.StdEncoding.EncodeToString(auth[:])
}

// Connect dials OBS and completes the Hello/Identify handshake
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.conn != nil {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("failed to dial %s: %w", c.url, err)
	}

	if err := c.handshake(ctx, conn); err != nil {
		conn.Close()
		return err
	}

	done := make(chan struct{})
	c.mu.Lock()
	c.conn = conn
	c.done = done
	c.mu.Unlock()

	go c.readLoop(conn, done)

	c.logger.Info("Connected to OBS", zap.String("url", c.url))
	return nil
}

func (c *Client) handshake(ctx context.Context, conn *websocket.Conn) error {
	deadline := time.Now().Add(handshakeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetReadDeadline(deadline); err != nil {
		return err
	}

	var msg message
	if err := conn.ReadJSON(&msg); err != nil {
		return fmt.Errorf("failed to read Hello: %w", err)
	}
	if msg.Op != opHello {
		return fmt.Errorf("expected Hello, got op %d", msg.Op)
	}

	var h hello
	if err := json.Unmarshal(msg.D, &h); err != nil {
		return fmt.Errorf("malformed Hello: %w", err)
	}

	id := identify{
		RPCVersion:         rpcVersion,
		EventSubscriptions: eventSubscriptions,
	}
	if h.Authentication != nil {
		if c.password == "" {
			return errors.New("obs-websocket requires a password (OBS_WEBSOCKET_PASSWORD)")
		}
		id.Authentication = AuthString(c.password, h.Authentication.Salt, h.Authentication.Challenge)
	}

	if err := c.write(conn, opIdentify, id); err != nil {
		return fmt.Errorf("failed to send Identify: %w", err)
	}

	if err := conn.ReadJSON(&msg); err != nil {
		return fmt.Errorf("identification failed: %w", err)
	}
	if msg.Op != opIdentified {
		return fmt.Errorf("expected Identified, got op %d", msg.Op)
	}

	c.logger.Debug("obs-websocket identified",
		zap.String("obsWebSocketVersion", h.ObsWebSocketVersion),
		zap.Int("rpcVersion", h.RPCVersion))

	return conn.SetReadDeadline(time.Time{})
}

func (c *Client) write(conn *websocket.Conn, op int, d any) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return conn.WriteJSON(message{Op: op, D: payload})
}

// readLoop owns all reads after the handshake
func (c *Client) readLoop(conn *websocket.Conn, done chan struct{}) {
	defer c.teardown(conn, done)

	for {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				c.logger.Warn("OBS connection lost", zap.Error(err))
			}
			return
		}

		switch msg.Op {
		case opRequestResponse:
			var resp response
			if err := json.Unmarshal(msg.D, &resp); err != nil {
				c.logger.Warn("Malformed request response", zap.Error(err))
				continue
			}
			c.mu.Lock()
			ch, ok := c.pending[resp.RequestID]
			delete(c.pending, resp.RequestID)
			c.mu.Unlock()
			if ok {
				ch <- resp
			}
		case opEvent:
		default:
			c.logger.Debug("Ignoring obs-websocket message", zap.Int("op", msg.Op))
		}
	}
}

// teardown forgets the connection so later calls fail fast; waiters observe done
func (c *Client) teardown(conn *websocket.Conn, done chan struct{}) {
	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
	}
	c.mu.Unlock()

	conn.Close()
	close(done)
}

// Call sends a request and waits for its response data
func (c *Client) Call(ctx context.Context, requestType string, data any) (json.RawMessage, error) {
	c.mu.Lock()
	conn, done := c.conn, c.done
	if conn == nil {
		c.mu.Unlock()
		return nil, ErrNotConnected
	}
	id := uuid.NewString()
	ch := make(chan response, 1)
	c.pending[id] = ch
	c.mu.Unlock()

	forget := func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}

	if err := c.write(conn, opRequest, request{RequestType: requestType, RequestID: id, RequestData: data}); err != nil {
		forget()
		return nil, fmt.Errorf("failed to send %s: %w", requestType, err)
	}

	select {
	case resp := <-ch:
		if !resp.RequestStatus.Result {
			return nil, &RequestError{
				RequestType: requestType,
				Code:        resp.RequestStatus.Code,
				Comment:     resp.RequestStatus.Comment,
			}
		}
		return resp.ResponseData, nil
	case <-done:
		forget()
		return nil, fmt.Errorf("%s: %w", requestType, ErrNotConnected)
	case <-ctx.Done():
		forget()
		return nil, ctx.Err()
	}
}

// Close disconnects from OBS
func (c *Client) Close() error {
	c.mu.Lock()
	conn, done := c.conn, c.done
	c.conn = nil
	c.mu.Unlock()

	if conn == nil {
		return nil
	}

	c.writeMu.Lock()
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	c.writeMu.Unlock()

	err := conn.Close()
	<-done
	return err
}
