// hcbridge - Home Center accessory bridge
//
// This is the main entry point for the hcbridge application. hcbridge
// polls a Fibaro Home Center hub, translates device properties into
// HomeKit characteristic values, and mirrors every update to MQTT,
// SQLite history, and InfluxDB telemetry.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/danharmsworth/hcbridge/internal/bridge"
	"github.com/danharmsworth/hcbridge/internal/convert"
	"github.com/danharmsworth/hcbridge/internal/hap"
	"github.com/danharmsworth/hcbridge/internal/history"
	"github.com/danharmsworth/hcbridge/internal/hub"
	"github.com/danharmsworth/hcbridge/internal/infrastructure/config"
	"github.com/danharmsworth/hcbridge/internal/infrastructure/database"
	"github.com/danharmsworth/hcbridge/internal/infrastructure/influxdb"
	"github.com/danharmsworth/hcbridge/internal/infrastructure/logging"
	"github.com/danharmsworth/hcbridge/internal/infrastructure/mqtt"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting hcbridge",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Open database
	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	// Create schema
	if bootErr := db.Bootstrap(ctx); bootErr != nil {
		return fmt.Errorf("bootstrapping database: %w", bootErr)
	}
	log.Info("database schema ready")

	historyRepo := history.NewSQLiteRepository(db.DB)

	// Connect to MQTT broker (optional)
	var mqttClient *mqtt.Client
	if cfg.MQTT.Enabled {
		mqttClient, err = mqtt.Connect(cfg.MQTT)
		if err != nil {
			return fmt.Errorf("connecting to MQTT: %w", err)
		}
		defer func() {
			log.Info("disconnecting from MQTT")
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)

		mqttClient.SetLogger(log)
		mqttClient.SetOnConnect(func() {
			log.Info("MQTT reconnected")
		})
		mqttClient.SetOnDisconnect(func(err error) {
			log.Warn("MQTT disconnected", "error", err)
		})
	} else {
		log.Info("MQTT disabled")
	}

	// Connect to InfluxDB (optional)
	var influxClient *influxdb.Client
	if cfg.InfluxDB.Enabled {
		influxClient, err = influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", err)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		log.Info("InfluxDB connected",
			"url", cfg.InfluxDB.URL,
			"org", cfg.InfluxDB.Org,
			"bucket", cfg.InfluxDB.Bucket,
		)

		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
	} else {
		log.Info("InfluxDB disabled")
	}

	// Connect to the hub
	hubClient, err := hub.NewClient(hub.Config{
		URL:      cfg.Hub.URL,
		Username: cfg.Hub.Username,
		Password: cfg.Hub.Password,
		Timeout:  cfg.GetRequestTimeout(),
	})
	if err != nil {
		return fmt.Errorf("creating hub client: %w", err)
	}
	log.Info("hub client ready", "url", cfg.Hub.URL)

	verifyDevices(ctx, hubClient, cfg.Devices, log)

	// Build the converter registry
	registry, err := convert.NewRegistry(convert.NewSet(hubClient), log)
	if err != nil {
		return fmt.Errorf("building converter registry: %w", err)
	}
	log.Info("converter registry built", "converters", registry.Len())

	// Assemble the bridge
	opts := bridge.Options{
		Registry:     registry,
		Devices:      hubClient,
		History:      historyRepo,
		Logger:       log,
		PollInterval: cfg.GetPollInterval(),
	}
	if mqttClient != nil {
		opts.Publisher = mqttClient
		opts.Topics = mqtt.Topics{}
	}
	if influxClient != nil {
		opts.Telemetry = influxClient
	}

	br, err := bridge.New(opts)
	if err != nil {
		return fmt.Errorf("creating bridge: %w", err)
	}

	bindings, err := bindDevices(br, cfg.Devices)
	if err != nil {
		return fmt.Errorf("binding devices: %w", err)
	}
	log.Info("devices bound", "services", len(cfg.Devices), "characteristics", bindings)

	// Verify all connections are healthy
	if err := healthCheck(ctx, db, mqttClient, influxClient); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("all health checks passed")

	br.Start()
	defer func() {
		log.Info("stopping bridge")
		br.Stop()
	}()

	log.Info("initialisation complete, waiting for shutdown signal")

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")

	// Deferred Close() calls will run in reverse order:
	// 1. Bridge poll loop
	// 2. InfluxDB (if enabled)
	// 3. MQTT (if enabled)
	// 4. Database

	log.Info("hcbridge stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses HCBRIDGE_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("HCBRIDGE_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// bindDevices registers every configured characteristic with the bridge.
// A characteristic may be named by framework identity (short type "25" or
// full UUID) or by its friendly name ("Brightness").
//
// Parameters:
//   - br: Bridge to bind against
//   - devices: Device sections from config.yaml
//
// Returns:
//   - int: Total characteristics bound
//   - error: If a characteristic name is unknown or a bind fails
func bindDevices(br *bridge.Bridge, devices []config.DeviceConfig) (int, error) {
	table := hap.NewTable()
	bound := 0
	for _, d := range devices {
		svc := hap.Service{
			IsClimateZone:          d.ClimateZone,
			IsHeatingZone:          d.HeatingZone,
			IsGlobalVariableDimmer: d.GlobalVariableDimmer,
			IsLockSwitch:           d.LockSwitch,
		}
		for _, name := range d.Characteristics {
			kind, ok := table.Resolve(name)
			if !ok {
				kind, ok = hap.KindFromName(name)
			}
			if !ok {
				return bound, fmt.Errorf("device %q: unknown characteristic %q", d.Name, name)
			}
			if _, err := br.Bind(d.IDs, svc, kind); err != nil {
				return bound, fmt.Errorf("device %q: binding %s: %w", d.Name, name, err)
			}
			bound++
		}
	}
	return bound, nil
}

// verifyDevices cross-checks configured device ids against the hub's device
// inventory and warns about any the hub does not know. Zone and global
// variable services are skipped; their ids reference panels and variables,
// not devices. An unreachable hub only logs a warning: hub availability is
// a degraded state at startup, and the poll loop recovers on its own.
func verifyDevices(ctx context.Context, client *hub.Client, devices []config.DeviceConfig, log *logging.Logger) {
	inventory, err := client.GetDevices(ctx)
	if err != nil {
		log.Warn("device verification skipped", "error", err)
		return
	}

	known := make(map[int]bool, len(inventory))
	for _, d := range inventory {
		known[d.ID] = true
	}

	for _, d := range devices {
		if d.ClimateZone || d.HeatingZone || d.GlobalVariableDimmer {
			continue
		}
		for _, id := range d.IDs {
			if !known[id] {
				log.Warn("configured device not present on hub",
					"device", d.Name,
					"id", id,
				)
			}
		}
	}
}

// healthCheck verifies all infrastructure connections are healthy.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - db: Database connection to check
//   - mqttClient: MQTT client to check (may be nil if disabled)
//   - influxClient: InfluxDB client to check (may be nil if disabled)
//
// Returns:
//   - error: First health check failure, or nil if all healthy
func healthCheck(ctx context.Context, db *database.DB, mqttClient *mqtt.Client, influxClient *influxdb.Client) error {
	// Check database
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	// Check MQTT (if enabled)
	if mqttClient != nil {
		if err := mqttClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("mqtt: %w", err)
		}
	}

	// Check InfluxDB (if enabled)
	if influxClient != nil {
		if err := influxClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("influxdb: %w", err)
		}
	}

	// Hub reachability is verified by the first refresh cycle; an offline
	// hub is a degraded state, not a startup failure.

	return nil
}
