// Package ditto is a client SDK for the Eclipse Ditto digital-twin
// protocol over MQTT.
//
// The SDK is JSON-over-MQTT glue: it builds Ditto protocol envelopes,
// publishes them through an eclipse/paho.mqtt.golang transport speaking
// the Eclipse Hono MQTT adapter dialect, and dispatches received
// envelopes to registered handlers. Transport semantics (reconnect
// backoff, QoS, TLS) are delegated to the paho library.
//
// # Architecture
//
//	application <-> ditto.Client <-> paho MQTT <-> broker (Hono adapter) <-> Ditto
//
// Envelopes are constructed with the builders in protocol/things and the
// entities in model:
//
//	thingID, _ := model.NamespacedIDFromString("test.ns:test-name")
//	env, _ := things.NewCommand(thingID).
//	    Feature("temperature").
//	    Twin().
//	    Modify(map[string]interface{}{"value": 21.5}).
//	    Envelope(things.WithResponseRequired(true))
//
// # Usage
//
//	cfg, _ := config.Load("configs/agent.yaml")
//	client := ditto.NewClient(cfg)
//	client.SetLogger(logging.New(cfg.Logging, "1.0.0"))
//
//	token := client.Subscribe(func(requestID string, msg *protocol.Envelope) {
//	    // handle the command, then answer:
//	    resp, _ := things.ResponseTo(msg)
//	    env, _ := resp.WithStatus(http.StatusNoContent).Envelope()
//	    client.Reply(requestID, env)
//	})
//	defer client.Unsubscribe(token)
//
//	if err := client.Connect(); err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Disconnect()
//	client.Send(env)
//
// # Concurrency
//
// Handlers run sequentially, in registration order, on the transport's
// network goroutine, never on the application's main goroutine. A
// panicking handler is recovered and logged without affecting the other
// handlers or the receive loop. The handler registry itself is safe for
// concurrent Subscribe/Unsubscribe while messages are being dispatched.
package ditto
