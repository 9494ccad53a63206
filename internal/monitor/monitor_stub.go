//go:build !linux

package monitor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pcantera/muse/internal/domain"
)

// MprisMonitor stub for non-Linux platforms
type MprisMonitor struct {
	logger *zap.Logger
}

// NewMprisMonitor creates a stub monitor that returns an error on non-Linux platforms
func NewMprisMonitor(logger *zap.Logger) *MprisMonitor {
	return &MprisMonitor{logger: logger}
}

// Start returns an error indicating MPRIS monitoring is not supported on this platform
func (m *MprisMonitor) Start(ctx context.Context) error {
	return fmt.Errorf("MPRIS monitoring is only supported on Linux systems")
}

// Stop is a no-op on non-Linux platforms
func (m *MprisMonitor) Stop(ctx context.Context) error {
	return nil
}

// Events returns a closed channel since monitoring is not available
func (m *MprisMonitor) Events() <-chan domain.TrackInfo {
	ch := make(chan domain.TrackInfo)
	close(ch)
	return ch
}
