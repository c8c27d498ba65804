package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/pits-server/internal/logger"
	"github.com/dtroode/pits-server/internal/model"
)

// DeviceReports records the state devices publish about themselves.
type DeviceReports struct {
	devices model.DeviceStore
	logger  *logger.Logger
	now     func() time.Time
}

func NewDeviceReports(devices model.DeviceStore, logger *logger.Logger) *DeviceReports {
	return &DeviceReports{devices: devices, logger: logger, now: time.Now}
}

// Report overwrites the stored device with the reported state.
func (r *DeviceReports) Report(ctx context.Context, id string, report model.DeviceReport) error {
	if id == "" {
		return fmt.Errorf("%w: empty device id", model.ErrBadRequest)
	}

	device := model.Device{
		ID:                id,
		MACAddress:        report.MACAddress,
		Version:           report.Version,
		LastUpdate:        r.now().UTC(),
		SystemInformation: report.SystemInformation,
	}
	if err := r.devices.Save(ctx, device); err != nil {
		r.logger.Error("Device report service: failed to save device",
			"device_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to save device: %w", err)
	}

	r.logger.Debug("Device report service: device state saved",
		"device_id", id,
		"version", report.Version)

	return nil
}
