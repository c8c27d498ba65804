package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dtroode/pits-server/internal/logger"
	"github.com/dtroode/pits-server/internal/metrics"
	"github.com/dtroode/pits-server/internal/model"
)

const reportTimeout = 5 * time.Second

// DeviceReporter stores reported device state.
type DeviceReporter interface {
	Report(ctx context.Context, id string, report model.DeviceReport) error
}

type reportPayload struct {
	MACAddress        string `json:"macAddress"`
	Version           string `json:"version"`
	SystemInformation struct {
		CPUUtilization   float64 `json:"cpuUtilization"`
		TotalMemoryBytes int64   `json:"totalMemoryBytes"`
		UsedMemoryBytes  int64   `json:"usedMemoryBytes"`
	} `json:"systemInformation"`
}

// NewReportHandler returns a handler saving reports published on device
// report topics. ctx bounds every save.
func NewReportHandler(ctx context.Context, reporter DeviceReporter, logger *logger.Logger) MessageHandler {
	return func(topic string, payload []byte) error {
		id, err := DeviceIDFromReportTopic(topic)
		if err != nil {
			metrics.DeviceReportsTotal.WithLabelValues("rejected").Inc()
			return err
		}

		var p reportPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			metrics.DeviceReportsTotal.WithLabelValues("rejected").Inc()
			return fmt.Errorf("failed to decode report of device %s: %w", id, err)
		}

		saveCtx, cancel := context.WithTimeout(ctx, reportTimeout)
		defer cancel()

		err = reporter.Report(saveCtx, id, model.DeviceReport{
			MACAddress: p.MACAddress,
			Version:    p.Version,
			SystemInformation: model.SystemInformation{
				CPUUtilization:   p.SystemInformation.CPUUtilization,
				TotalMemoryBytes: p.SystemInformation.TotalMemoryBytes,
				UsedMemoryBytes:  p.SystemInformation.UsedMemoryBytes,
			},
		})
		if err != nil {
			metrics.DeviceReportsTotal.WithLabelValues("failed").Inc()
			return fmt.Errorf("failed to store report of device %s: %w", id, err)
		}

		metrics.DeviceReportsTotal.WithLabelValues("stored").Inc()
		logger.Debug("MQTT report handler: report stored", "device_id", id)
		return nil
	}
}
