package bridge

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/danharmsworth/hcbridge/internal/convert"
	"github.com/danharmsworth/hcbridge/internal/hap"
	"github.com/danharmsworth/hcbridge/internal/hub"
)

// Bridge operation constants.
const (
	// defaultPollInterval is used when Options.PollInterval is zero.
	defaultPollInterval = 10 * time.Second

	// refreshTimeout bounds one full refresh cycle, secondary zone
	// fetches included.
	refreshTimeout = 30 * time.Second
)

// DeviceFetcher provides device property bags from the hub.
// Satisfied by *hub.Client; faked in tests.
type DeviceFetcher interface {
	GetDevice(ctx context.Context, id int) (*hub.Device, error)
}

// Publisher mirrors characteristic state to MQTT.
// Satisfied by *mqtt.Client; optional.
type Publisher interface {
	PublishRetained(topic string, payload []byte) error
	IsConnected() bool
}

// Recorder persists characteristic updates.
// Satisfied by history.Repository; optional.
type Recorder interface {
	Record(ctx context.Context, deviceID int, characteristic, value string) error
}

// Telemetry writes time-series points.
// Satisfied by *influxdb.Client; optional.
type Telemetry interface {
	WriteCharacteristic(deviceID int, characteristic string, value float64)
	WriteRefreshCycle(devices, updates int, duration time.Duration)
}

// TopicBuilder builds the MQTT topic for a characteristic update.
// Satisfied by mqtt.Topics.
type TopicBuilder interface {
	CharacteristicState(deviceID int, characteristic string) string
}

// Logger is the narrow logging interface the bridge needs.
// Compatible with logging.Logger and slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// binding connects one characteristic cell to the device ids and service
// flags that feed it.
type binding struct {
	kind      hap.Kind
	cell      *hap.Cell
	service   hap.Service
	deviceIDs []int
}

// Options configures a Bridge.
type Options struct {
	// Registry dispatches property bags to converters. Required.
	Registry *convert.Registry

	// Devices fetches device property bags from the hub. Required.
	Devices DeviceFetcher

	// Publisher mirrors updates to MQTT. Optional.
	Publisher Publisher

	// Topics builds MQTT topics for updates. Required when Publisher is set.
	Topics TopicBuilder

	// History persists updates to SQLite. Optional.
	History Recorder

	// Telemetry writes updates to the time-series database. Optional.
	Telemetry Telemetry

	// Logger is an optional structured logger.
	Logger Logger

	// PollInterval is the refresh cycle period. Zero means the default.
	PollInterval time.Duration
}

// Bridge orchestrates the read path: it polls the hub for device
// properties, dispatches them through the converter registry, and fans
// accepted updates out to MQTT, SQLite history, and InfluxDB.
//
// Thread Safety: All methods are safe for concurrent use.
type Bridge struct {
	registry  *convert.Registry
	devices   DeviceFetcher
	publisher Publisher
	topics    TopicBuilder
	history   Recorder
	telemetry Telemetry
	logger    Logger

	pollInterval time.Duration

	bindings   []*binding
	bindingsMu sync.RWMutex

	// State cache for change detection
	stateCache   map[int]map[string]any
	stateCacheMu sync.Mutex

	// Updates accepted during the current refresh cycle
	cycleUpdates   int
	cycleUpdatesMu sync.Mutex

	// Shutdown coordination
	done      chan struct{}
	wg        sync.WaitGroup
	stopOnce  sync.Once
	ctx       context.Context
	ctxCancel context.CancelFunc
}

// New creates a bridge instance. Call Start() to begin polling.
func New(opts Options) (*Bridge, error) {
	if opts.Registry == nil {
		return nil, fmt.Errorf("converter registry is required")
	}
	if opts.Devices == nil {
		return nil, fmt.Errorf("device fetcher is required")
	}
	if opts.Publisher != nil && opts.Topics == nil {
		return nil, fmt.Errorf("topic builder is required when a publisher is set")
	}

	interval := opts.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	ctx, ctxCancel := context.WithCancel(context.Background())

	return &Bridge{
		registry:     opts.Registry,
		devices:      opts.Devices,
		publisher:    opts.Publisher,
		topics:       opts.Topics,
		history:      opts.History,
		telemetry:    opts.Telemetry,
		logger:       opts.Logger,
		pollInterval: interval,
		stateCache:   make(map[int]map[string]any),
		done:         make(chan struct{}),
		ctx:          ctx,
		ctxCancel:    ctxCancel,
	}, nil
}

// Bind registers a characteristic for a device service and returns its
// cell. The accessory framework reads current values from the cell; the
// refresh loop writes into it.
//
// Parameters:
//   - deviceIDs: Hub device ids backing the service (first id is primary)
//   - svc: Service capability flags selecting converter branches
//   - kind: Characteristic kind
//
// Returns:
//   - *hap.Cell: Cell holding the characteristic's current value
//   - error: If no device id is given or the kind has no converter
func (b *Bridge) Bind(deviceIDs []int, svc hap.Service, kind hap.Kind) (*hap.Cell, error) {
	if len(deviceIDs) == 0 {
		return nil, fmt.Errorf("at least one device id is required")
	}
	if _, ok := b.registry.ByKind(kind); !ok {
		return nil, fmt.Errorf("no converter registered for kind %s", kind)
	}

	bd := &binding{
		kind:      kind,
		service:   svc,
		deviceIDs: append([]int(nil), deviceIDs...),
	}
	bd.cell = hap.NewCell(kind, hap.DefaultProps(kind), func(k hap.Kind, v any) {
		b.fanOut(bd, v)
	})

	b.bindingsMu.Lock()
	b.bindings = append(b.bindings, bd)
	b.bindingsMu.Unlock()

	return bd.cell, nil
}

// Start begins the poll loop. The first refresh runs immediately.
func (b *Bridge) Start() {
	b.wg.Add(1)
	go b.pollLoop()

	b.bindingsMu.RLock()
	count := len(b.bindings)
	b.bindingsMu.RUnlock()

	b.logInfo("bridge started",
		"bindings", count,
		"poll_interval", b.pollInterval.String())
}

// Stop gracefully shuts down the bridge. Safe to call multiple times.
func (b *Bridge) Stop() {
	b.stopOnce.Do(func() {
		close(b.done)
		b.ctxCancel()
		b.wg.Wait()
		b.logInfo("bridge stopped")
	})
}

// pollLoop runs refresh cycles until Stop is called.
func (b *Bridge) pollLoop() {
	defer b.wg.Done()

	ticker := time.NewTicker(b.pollInterval)
	defer ticker.Stop()

	b.refreshCycle()

	for {
		select {
		case <-b.done:
			return
		case <-ticker.C:
			b.refreshCycle()
		}
	}
}

// refreshCycle runs one bounded refresh and reports cycle telemetry.
func (b *Bridge) refreshCycle() {
	ctx, cancel := context.WithTimeout(b.ctx, refreshTimeout)
	defer cancel()

	start := time.Now()
	devices, updates := b.RefreshAll(ctx)

	if b.telemetry != nil {
		b.telemetry.WriteRefreshCycle(devices, updates, time.Since(start))
	}

	b.logDebug("refresh cycle complete",
		"devices", devices,
		"updates", updates,
		"duration_ms", time.Since(start).Milliseconds())
}

// RefreshAll fetches every bound device once and dispatches each binding
// through the converter registry.
//
// Fetch failures skip the affected bindings and are logged; one
// unreachable device never blocks the rest of the cycle.
//
// Parameters:
//   - ctx: Context bounding the whole cycle
//
// Returns:
//   - int: Number of devices fetched successfully
//   - int: Number of characteristic updates accepted
func (b *Bridge) RefreshAll(ctx context.Context) (int, int) {
	b.bindingsMu.RLock()
	bindings := make([]*binding, len(b.bindings))
	copy(bindings, b.bindings)
	b.bindingsMu.RUnlock()

	b.cycleUpdatesMu.Lock()
	b.cycleUpdates = 0
	b.cycleUpdatesMu.Unlock()

	// Fetch each device once per cycle
	props := make(map[int]hub.Properties)
	failed := make(map[int]bool)
	for _, bd := range bindings {
		id := bd.deviceIDs[0]
		if _, seen := props[id]; seen || failed[id] {
			continue
		}
		device, err := b.devices.GetDevice(ctx, id)
		if err != nil {
			failed[id] = true
			b.logWarn("device fetch failed", "device_id", id, "error", err.Error())
			continue
		}
		props[id] = device.Properties
	}

	for _, bd := range bindings {
		bag, ok := props[bd.deviceIDs[0]]
		if !ok {
			continue
		}
		b.registry.Dispatch(ctx, convert.Request{
			Characteristic: bd.cell,
			Service:        bd.service,
			DeviceIDs:      bd.deviceIDs,
			Properties:     bag,
		})
	}

	b.cycleUpdatesMu.Lock()
	updates := b.cycleUpdates
	b.cycleUpdatesMu.Unlock()

	return len(props), updates
}

// fanOut distributes one accepted characteristic update to MQTT, history,
// and telemetry. Unchanged values are dropped here so retained topics and
// the history table only record transitions.
func (b *Bridge) fanOut(bd *binding, value any) {
	deviceID := bd.deviceIDs[0]
	characteristic := bd.kind.String()

	if b.stateUnchanged(deviceID, characteristic, value) {
		return
	}

	b.cycleUpdatesMu.Lock()
	b.cycleUpdates++
	b.cycleUpdatesMu.Unlock()

	text := formatValue(value)

	if b.publisher != nil && b.publisher.IsConnected() {
		topic := b.topics.CharacteristicState(deviceID, characteristic)
		if err := b.publisher.PublishRetained(topic, []byte(text)); err != nil {
			b.logWarn("state publish failed",
				"topic", topic,
				"error", err.Error())
		}
	}

	if b.history != nil {
		if err := b.history.Record(b.ctx, deviceID, characteristic, text); err != nil {
			b.logWarn("history record failed",
				"device_id", deviceID,
				"characteristic", characteristic,
				"error", err.Error())
		}
	}

	if b.telemetry != nil {
		if f, ok := numericValue(value); ok {
			b.telemetry.WriteCharacteristic(deviceID, characteristic, f)
		}
	}
}

// stateUnchanged checks if the new value matches the cached state.
// Returns true if unchanged (should skip fan-out).
func (b *Bridge) stateUnchanged(deviceID int, characteristic string, value any) bool {
	b.stateCacheMu.Lock()
	defer b.stateCacheMu.Unlock()

	if b.stateCache[deviceID] == nil {
		b.stateCache[deviceID] = make(map[string]any)
	}

	if cached, ok := b.stateCache[deviceID][characteristic]; ok && cached == value {
		return true
	}

	b.stateCache[deviceID][characteristic] = value
	return false
}

// formatValue renders a converter output as the MQTT/history payload.
func formatValue(v any) string {
	switch x := v.(type) {
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// numericValue maps a converter output onto a telemetry float.
// Booleans become 0/1 so on/off history is graphable.
func numericValue(v any) (float64, bool) {
	switch x := v.(type) {
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case int:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

func (b *Bridge) logDebug(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Debug(msg, args...)
	}
}

func (b *Bridge) logInfo(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Info(msg, args...)
	}
}

func (b *Bridge) logWarn(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Warn(msg, args...)
	}
}
