//go:build linux

package monitor

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"

	"github.com/pcantera/muse/internal/domain"
)

const (
	mprisPrefix = "org.mpris.MediaPlayer2."
	mprisPath   = "/org/mpris/MediaPlayer2"
	propMeta    = "org.mpris.MediaPlayer2.Player.Metadata"
	propStatus  = "org.mpris.MediaPlayer2.Player.PlaybackStatus"
)

// MprisMonitor watches media players over the D-Bus MPRIS interface and
// emits a TrackInfo whenever metadata or playback status changes.
type MprisMonitor struct {
	logger  *zap.Logger
	events  chan domain.TrackInfo
	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	conn    DBusClient
	wg      sync.WaitGroup
}

// NewMprisMonitor creates a new MPRIS monitor instance
func NewMprisMonitor(logger *zap.Logger) *MprisMonitor {
	return &MprisMonitor{
		logger: logger,
		events: make(chan domain.TrackInfo, 10),
	}
}

// Start connects to the session bus, emits the current track of every
// running player, then blocks processing change signals until the context
// is cancelled.
func (m *MprisMonitor) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return nil
	}
	m.running = true
	monitorCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.mu.Unlock()

	conn, err := NewStdDBusClient()
	if err != nil {
		m.mu.Lock()
		m.running = false
		m.cancel = nil
		m.mu.Unlock()
		return fmt.Errorf("session bus connection failed: %w", err)
	}

	// Stop may have run while we were connecting; its wg.Wait has already
	// passed, so nothing started past this point would be waited on.
	select {
	case <-monitorCtx.Done():
		m.logger.Info("Monitor stopped during D-Bus connection")
		if cerr := conn.Close(); cerr != nil {
			m.logger.Warn("Failed to close D-Bus connection", zap.Error(cerr))
		}
		return monitorCtx.Err()
	default:
	}

	m.mu.Lock()
	m.conn = conn
	m.mu.Unlock()

	// The scan emits events, so Stop must wait for it before closing the
	// channel.
	m.wg.Add(1)
	func() {
		defer m.wg.Done()
		if err := m.scanPlayers(); err != nil {
			m.logger.Warn("Initial player scan failed", zap.Error(err))
		}
	}()

	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(mprisPath),
		dbus.WithMatchInterface("org.freedesktop.DBus.Properties"),
		dbus.WithMatchMember("PropertiesChanged"),
	); err != nil {
		return fmt.Errorf("failed to add match signal: %w", err)
	}

	m.logger.Info("MPRIS monitor started")

	m.wg.Add(1)
	go m.watchSignals(monitorCtx)

	<-monitorCtx.Done()
	return monitorCtx.Err()
}

// Stop gracefully stops the monitor
func (m *MprisMonitor) Stop(ctx context.Context) error {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return nil
	}
	if m.cancel != nil {
		m.cancel()
	}
	m.running = false
	m.mu.Unlock()

	// All producers must finish before the channel closes
	m.wg.Wait()
	close(m.events)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conn != nil {
		if err := m.conn.Close(); err != nil {
			m.logger.Warn("Failed to close D-Bus connection", zap.Error(err))
		}
	}
	m.logger.Info("MPRIS monitor stopped")
	return nil
}

// Events returns a read-only channel that emits TrackInfo
func (m *MprisMonitor) Events() <-chan domain.TrackInfo {
	return m.events
}

// scanPlayers emits the current track for every MPRIS player on the bus.
func (m *MprisMonitor) scanPlayers() error {
	names, err := m.conn.ListNames()
	if err != nil {
		return fmt.Errorf("failed to list bus names: %w", err)
	}

	count := 0
	for _, name := range names {
		if !strings.HasPrefix(name, mprisPrefix) {
			continue
		}
		count++
		if err := m.emitCurrentTrack(name); err != nil {
			m.logger.Warn("Failed to read player state",
				zap.String("player", name),
				zap.Error(err))
		}
	}

	m.logger.Info("Player scan complete", zap.Int("players", count))
	return nil
}

// emitCurrentTrack reads a player's metadata and status and emits them.
func (m *MprisMonitor) emitCurrentTrack(player string) error {
	metaVariant, err := m.conn.GetProperty(player, mprisPath, propMeta)
	if err != nil {
		return fmt.Errorf("failed to get metadata: %w", err)
	}

	// Players with nothing loaded return nil or odd types here
	metadata, ok := metaVariant.Value().(map[string]dbus.Variant)
	if !ok {
		m.logger.Debug("Metadata variant is not a map, skipping",
			zap.String("player", player))
		return nil
	}

	statusVariant, err := m.conn.GetProperty(player, mprisPath, propStatus)
	if err != nil {
		return fmt.Errorf("failed to get playback status: %w", err)
	}
	status, ok := statusVariant.Value().(string)
	if !ok {
		return fmt.Errorf("invalid playback status format")
	}

	m.emit(parseTrack(metadata, status), player)
	return nil
}

// watchSignals consumes PropertiesChanged signals until ctx is cancelled.
func (m *MprisMonitor) watchSignals(ctx context.Context) {
	defer m.wg.Done()

	signals := make(chan *dbus.Signal, 10)
	m.conn.Signal(signals)

	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-signals:
			if sig == nil {
				continue
			}
			m.handleSignal(sig)
		}
	}
}

// handleSignal turns a PropertiesChanged signal into a track event.
// Signals carry only the changed properties, so whichever of metadata or
// status is missing gets fetched from the sender.
func (m *MprisMonitor) handleSignal(sig *dbus.Signal) {
	if sig.Name != "org.freedesktop.DBus.Properties.PropertiesChanged" || len(sig.Body) < 2 {
		return
	}
	if iface, ok := sig.Body[0].(string); !ok || iface != "org.mpris.MediaPlayer2.Player" {
		return
	}
	changed, ok := sig.Body[1].(map[string]dbus.Variant)
	if !ok {
		return
	}

	metaVariant, hasMeta := changed["Metadata"]
	statusVariant, hasStatus := changed["PlaybackStatus"]
	if !hasMeta && !hasStatus {
		return
	}

	var metadata map[string]dbus.Variant
	if hasMeta {
		if metadata, ok = metaVariant.Value().(map[string]dbus.Variant); !ok {
			m.logger.Warn("Invalid metadata format in signal, ignoring")
			return
		}
	} else if v, err := m.conn.GetProperty(sig.Sender, mprisPath, propMeta); err == nil {
		metadata, _ = v.Value().(map[string]dbus.Variant)
	}

	var status string
	if hasStatus {
		if status, ok = statusVariant.Value().(string); !ok {
			m.logger.Warn("Invalid playback status format in signal, ignoring")
			return
		}
	} else if v, err := m.conn.GetProperty(sig.Sender, mprisPath, propStatus); err == nil {
		status, _ = v.Value().(string)
	}

	m.emit(parseTrack(metadata, status), sig.Sender)
}

// emit sends a track event without ever blocking the signal loop. Dropped
// events during rapid skipping are fine: the consumer debounces anyway and
// only the settled track matters. The mutex is held through the send:
// Stop flips running under the same lock before it closes the channel, so
// a send can never race the close.
func (m *MprisMonitor) emit(track domain.TrackInfo, player string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		m.logger.Debug("Monitor stopped, dropping track event")
		return
	}
	select {
	case m.events <- track:
		m.logger.Info("Media change detected",
			zap.String("player", player),
			zap.String("title", track.Title),
			zap.String("artist", track.Artist),
			zap.String("status", string(track.Status)))
	default:
		m.logger.Debug("Events channel full, dropping track event")
	}
}

// parseTrack converts MPRIS metadata to the domain model.
func parseTrack(metadata map[string]dbus.Variant, status string) domain.TrackInfo {
	var track domain.TrackInfo

	switch status {
	case "Playing":
		track.Status = domain.StatusPlaying
	case "Paused":
		track.Status = domain.StatusPaused
	default:
		track.Status = domain.StatusStopped
	}

	if metadata == nil {
		return track
	}

	if v, ok := metadata["xesam:title"]; ok {
		if title, ok := v.Value().(string); ok {
			track.Title = title
		}
	}
	if v, ok := metadata["xesam:artist"]; ok {
		switch artists := v.Value().(type) {
		case []string:
			if len(artists) > 0 {
				track.Artist = artists[0]
			}
		case string:
			track.Artist = artists
		}
	}
	if v, ok := metadata["xesam:album"]; ok {
		if album, ok := v.Value().(string); ok {
			track.Album = album
		}
	}

	return track
}
