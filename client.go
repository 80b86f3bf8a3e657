package ditto

import (
	"fmt"
	"sync"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/twinforge/ditto-go/config"
	"github.com/twinforge/ditto-go/protocol"
)

// Handler is the callback signature for received protocol envelopes.
//
// The request id links the envelope to the transport request that
// carried it; it is "" for one-way commands and must be passed back to
// Reply when answering. Handlers run on the transport's network
// goroutine, never on the goroutine that registered them, and should not
// block for extended periods.
type Handler func(requestID string, message *protocol.Envelope)

// HandlerToken identifies a registered Handler so it can be removed
// again. Tokens are never reused within a Client's lifetime.
type HandlerToken uint64

// Logger is the interface for optional logging support.
// Compatible with logging.Logger and slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// registration pairs a handler with its removal token. Registration
// order is preserved so handlers fire in the order they were added.
type registration struct {
	token   HandlerToken
	handler Handler
}

// Client is the entry point of the SDK. It connects to an MQTT broker
// speaking the Eclipse Hono adapter dialect, publishes Ditto protocol
// envelopes and dispatches received envelopes to registered handlers.
//
// Thread Safety:
//   - All methods are safe for concurrent use from multiple goroutines.
//   - Handlers may be registered and removed while the transport's
//     receive callback is firing.
type Client struct {
	cfg        *config.Config
	pahoClient pahomqtt.Client
	external   bool

	handlers  []registration
	nextToken HandlerToken
	handlerMu sync.RWMutex

	connected bool
	connMu    sync.RWMutex

	onConnect    func()
	onDisconnect func(err error)
	callbackMu   sync.RWMutex

	logger   Logger
	loggerMu sync.RWMutex
}

// NewClient creates a Client for the given configuration.
//
// By default the Client owns its paho MQTT connection, built from cfg on
// Connect. Use WithExternalClient to run on top of an existing,
// already connected paho client instead, in which case cfg may be nil.
func NewClient(cfg *config.Config, opts ...Option) *Client {
	c := &Client{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect establishes the transport connection and subscribes for
// inbound commands.
//
// In the default mode it performs the following setup:
//  1. Builds connection options from config (broker URL, auth, TLS)
//  2. Sets up auto-reconnect with exponential backoff
//  3. Attempts the initial connection with timeout
//  4. Subscribes to the command request topic (restored on reconnect)
//
// With an external paho client only the command subscription is
// attached; connection management stays with the caller.
//
// Returns:
//   - error: ErrConnectionFailed if the initial connection fails,
//     ErrNotConnected if an external client is not connected,
//     ErrSubscribeFailed if the command subscription is rejected
func (c *Client) Connect() error {
	if c.external {
		if !c.pahoClient.IsConnected() {
			return fmt.Errorf("%w: external MQTT client must be connected", ErrNotConnected)
		}
		if err := c.subscribeCommands(); err != nil {
			return err
		}
		c.setConnected(true)
		c.notifyConnect()
		return nil
	}

	opts := buildClientOptions(c.cfg)
	opts.SetOnConnectHandler(func(_ pahomqtt.Client) {
		c.handleConnect()
	})
	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
		c.handleDisconnect(err)
	})

	c.pahoClient = pahomqtt.NewClient(opts)
	token := c.pahoClient.Connect()
	if !token.WaitTimeout(defaultConnectTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrConnectionFailed, defaultConnectTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	// The OnConnectHandler runs asynchronously and may not have executed
	// yet; mark connected here so IsConnected() is immediately true.
	c.setConnected(true)
	return nil
}

// Disconnect tears the transport down again.
//
// The command subscription is removed in every mode. A client-owned
// connection is closed after a short quiesce period for in-flight
// operations; an external client is left connected.
func (c *Client) Disconnect() {
	if c.pahoClient == nil {
		return
	}

	if c.pahoClient.IsConnected() {
		token := c.pahoClient.Unsubscribe(topicCommandRequests)
		token.WaitTimeout(defaultPublishTimeout)
	}

	if c.external {
		c.setConnected(false)
		c.notifyDisconnect(nil)
		return
	}

	c.pahoClient.Disconnect(defaultDisconnectQuiesce)
	c.setConnected(false)
}

// IsConnected returns the current connection state.
func (c *Client) IsConnected() bool {
	c.connMu.RLock()
	defer c.connMu.RUnlock()
	return c.connected && c.pahoClient != nil && c.pahoClient.IsConnected()
}

// SetOnConnect sets a callback to be invoked when the connection is
// established. This is called on initial connect and on every reconnect.
func (c *Client) SetOnConnect(callback func()) {
	c.callbackMu.Lock()
	c.onConnect = callback
	c.callbackMu.Unlock()
}

// SetOnDisconnect sets a callback to be invoked when the connection is
// lost. The error parameter describes why the connection was lost; it is
// nil on a requested disconnect.
func (c *Client) SetOnDisconnect(callback func(err error)) {
	c.callbackMu.Lock()
	c.onDisconnect = callback
	c.callbackMu.Unlock()
}

// SetLogger sets a logger for connection events and handler failures.
// If not set, handler failures are silently ignored.
func (c *Client) SetLogger(logger Logger) {
	c.loggerMu.Lock()
	c.logger = logger
	c.loggerMu.Unlock()
}

// Subscribe registers a handler for every inbound protocol envelope.
//
// There is no topic filtering: each registered handler sees each
// envelope, in registration order. The returned token removes exactly
// this registration again.
func (c *Client) Subscribe(handler Handler) HandlerToken {
	c.handlerMu.Lock()
	defer c.handlerMu.Unlock()
	c.nextToken++
	token := c.nextToken
	c.handlers = append(c.handlers, registration{token: token, handler: handler})
	return token
}

// Unsubscribe removes the registrations identified by the given tokens.
// Called without arguments it removes ALL registered handlers. Unknown
// tokens are ignored.
func (c *Client) Unsubscribe(tokens ...HandlerToken) {
	c.handlerMu.Lock()
	defer c.handlerMu.Unlock()

	if len(tokens) == 0 {
		c.handlers = nil
		return
	}

	remove := make(map[HandlerToken]struct{}, len(tokens))
	for _, t := range tokens {
		remove[t] = struct{}{}
	}
	kept := c.handlers[:0]
	for _, reg := range c.handlers {
		if _, ok := remove[reg.token]; !ok {
			kept = append(kept, reg)
		}
	}
	c.handlers = kept
}

// HandlerCount returns the number of registered handlers.
func (c *Client) HandlerCount() int {
	c.handlerMu.RLock()
	defer c.handlerMu.RUnlock()
	return len(c.handlers)
}

// Send publishes the envelope to the events endpoint.
//
// Returns:
//   - error: ErrNotConnected or a wrapped ErrPublishFailed
func (c *Client) Send(message *protocol.Envelope) error {
	return c.publish(topicEvents, message)
}

// SendTelemetry publishes the envelope to the telemetry endpoint.
//
// Returns:
//   - error: ErrNotConnected or a wrapped ErrPublishFailed
func (c *Client) SendTelemetry(message *protocol.Envelope) error {
	return c.publish(topicTelemetry, message)
}

// Reply publishes a response envelope for the command request identified
// by requestID. The response topic embeds the request id and the
// envelope's status code; replies are never dispatched to local
// handlers.
//
// Returns:
//   - error: ErrNoStatus if the envelope has no status code,
//     ErrNotConnected, or a wrapped ErrPublishFailed
func (c *Client) Reply(requestID string, message *protocol.Envelope) error {
	if message.Status == 0 {
		return ErrNoStatus
	}
	return c.publish(responseTopic(requestID, message.Status), message)
}

// publish serializes the envelope and hands it to the transport.
func (c *Client) publish(topic string, message *protocol.Envelope) error {
	if !c.IsConnected() {
		return ErrNotConnected
	}

	payload, err := message.ToJSON()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}

	token := c.pahoClient.Publish(topic, c.qos(), false, payload)
	if !token.WaitTimeout(defaultPublishTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrPublishFailed, defaultPublishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}
	return nil
}

// qos returns the configured QoS level, defaulting to 1 when the client
// runs on an external connection without configuration.
func (c *Client) qos() byte {
	if c.cfg == nil {
		return 1
	}
	return byte(c.cfg.QoS)
}

// subscribeCommands attaches the inbound command subscription.
func (c *Client) subscribeCommands() error {
	token := c.pahoClient.Subscribe(topicCommandRequests, c.qos(), c.handleMessage)
	if !token.WaitTimeout(defaultPublishTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrSubscribeFailed, defaultPublishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrSubscribeFailed, err)
	}
	return nil
}

// handleConnect is called by paho when the connection is established,
// on initial connect and on every reconnect.
func (c *Client) handleConnect() {
	c.setConnected(true)

	if err := c.subscribeCommands(); err != nil {
		if logger := c.getLogger(); logger != nil {
			logger.Error("failed to restore command subscription", "error", err)
		}
	}

	c.notifyConnect()
}

// handleDisconnect is called by paho when the connection is lost.
func (c *Client) handleDisconnect(err error) {
	c.setConnected(false)
	c.notifyDisconnect(err)
}

// handleMessage is the paho message callback: it parses the envelope and
// dispatches it to the registered handlers.
func (c *Client) handleMessage(_ pahomqtt.Client, msg pahomqtt.Message) {
	c.dispatch(msg.Topic(), msg.Payload())
}

// dispatch parses a received payload and invokes every registered
// handler, in registration order, with the extracted request id.
//
// A panicking handler is recovered and logged; it never prevents the
// remaining handlers from running or crashes the receive loop.
func (c *Client) dispatch(topic string, payload []byte) {
	c.handlerMu.RLock()
	handlers := make([]registration, len(c.handlers))
	copy(handlers, c.handlers)
	c.handlerMu.RUnlock()

	logger := c.getLogger()

	if len(handlers) == 0 {
		if logger != nil {
			logger.Debug("no handlers registered for received message", "topic", topic)
		}
		return
	}

	envelope, err := protocol.EnvelopeFromJSON(payload)
	if err != nil {
		if logger != nil {
			logger.Error("discarding unparsable message", "topic", topic, "error", err)
		}
		return
	}

	requestID := requestIDFromTopic(topic)
	if logger != nil {
		if requestID == "" {
			logger.Debug("received one-way message", "topic", topic)
		} else {
			logger.Debug("received message", "topic", topic, "request_id", requestID)
		}
	}

	for _, reg := range handlers {
		c.invoke(reg, requestID, envelope, logger)
	}
}

// invoke runs a single handler with panic isolation.
func (c *Client) invoke(reg registration, requestID string, envelope *protocol.Envelope, logger Logger) {
	defer func() {
		if r := recover(); r != nil {
			if logger != nil {
				logger.Error("message handler panic recovered",
					"token", uint64(reg.token),
					"panic", r,
				)
			}
		}
	}()
	reg.handler(requestID, envelope)
}

func (c *Client) setConnected(connected bool) {
	c.connMu.Lock()
	c.connected = connected
	c.connMu.Unlock()
}

func (c *Client) notifyConnect() {
	c.callbackMu.RLock()
	callback := c.onConnect
	c.callbackMu.RUnlock()
	if callback != nil {
		callback()
	}
}

func (c *Client) notifyDisconnect(err error) {
	c.callbackMu.RLock()
	callback := c.onDisconnect
	c.callbackMu.RUnlock()
	if callback != nil {
		callback(err)
	}
}

func (c *Client) getLogger() Logger {
	c.loggerMu.RLock()
	defer c.loggerMu.RUnlock()
	return c.logger
}
