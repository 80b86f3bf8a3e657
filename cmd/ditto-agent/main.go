// ditto-agent is a reference device agent built on the Ditto client SDK.
//
// It connects to an MQTT broker speaking the Eclipse Hono adapter
// dialect, announces a simple simulated thing, logs every received
// command and answers commands that require a response with 204.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ditto "github.com/twinforge/ditto-go"
	"github.com/twinforge/ditto-go/config"
	"github.com/twinforge/ditto-go/logging"
	"github.com/twinforge/ditto-go/model"
	"github.com/twinforge/ditto-go/protocol"
	"github.com/twinforge/ditto-go/protocol/things"
)

// Version information - set at build time via ldflags
var (
	version = "dev"
	commit  = "unknown"
)

const defaultConfigPath = "configs/agent.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for
// consistent exit-code handling.
func run(ctx context.Context) error {
	log := logging.Default()
	log.Info("starting ditto-agent", "version", version, "commit", commit)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	log = logging.New(cfg.Logging, version)

	thingID, err := model.NamespacedIDFromString("org.example:demo-device")
	if err != nil {
		return fmt.Errorf("parsing thing ID: %w", err)
	}

	client := ditto.NewClient(cfg)
	client.SetLogger(log.With("component", "ditto"))
	client.SetOnConnect(func() {
		log.Info("connected", "host", cfg.Broker.Host, "port", cfg.Broker.Port)
	})
	client.SetOnDisconnect(func(err error) {
		log.Warn("connection lost", "error", err)
	})

	token := client.Subscribe(func(requestID string, msg *protocol.Envelope) {
		log.Info("received command",
			"topic", msg.Topic.String(),
			"path", msg.Path,
			"correlation_id", msg.CorrelationID(),
		)
		if requestID == "" {
			return
		}
		response, err := things.ResponseTo(msg)
		if err != nil {
			log.Error("building response", "error", err)
			return
		}
		env, err := response.WithStatus(http.StatusNoContent).Envelope()
		if err != nil {
			log.Error("finalizing response", "error", err)
			return
		}
		if err := client.Reply(requestID, env); err != nil {
			log.Error("sending reply", "error", err)
		}
	})
	defer client.Unsubscribe(token)

	if err := client.Connect(); err != nil {
		return fmt.Errorf("connecting: %w", err)
	}
	defer client.Disconnect()

	if err := announce(client, thingID); err != nil {
		return fmt.Errorf("announcing thing: %w", err)
	}
	log.Info("thing announced", "thing_id", thingID.String())

	<-ctx.Done()
	log.Info("shutting down")
	return nil
}

// announce publishes a created event describing the simulated thing.
func announce(client *ditto.Client, thingID *model.NamespacedID) error {
	feature := model.NewFeature().
		WithProperty("temperature", 0.0).
		WithDesiredProperty("temperature", 21.5)

	thing := model.NewThing().
		WithID(thingID).
		WithAttribute("location", "lab").
		WithFeature("thermostat", feature)

	env, err := things.NewEvent(thingID).
		Created(thing).
		Envelope(things.WithResponseRequired(false))
	if err != nil {
		return err
	}
	return client.Send(env)
}

// getConfigPath returns the config file path from argv or the default.
func getConfigPath() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return defaultConfigPath
}
