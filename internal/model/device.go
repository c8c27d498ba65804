package model

import (
	"context"
	"time"
)

// DeviceStore defines persistence operations for devices.
type DeviceStore interface {
	Get(ctx context.Context, id string) (Device, bool, error)
	Save(ctx context.Context, device Device) error
	BatchGetByOwners(ctx context.Context, owners []DeviceOwner) ([]Device, error)
}

// Device represents a registered camera device and its last reported state.
type Device struct {
	ID         string
	MACAddress string
	Version    string
	LastUpdate time.Time
	SystemInformation
}

// SystemInformation is the resource snapshot a device sends with each report.
type SystemInformation struct {
	CPUUtilization   float64
	TotalMemoryBytes int64
	UsedMemoryBytes  int64
}

// DeviceReport is the payload a device publishes about itself.
type DeviceReport struct {
	MACAddress string
	Version    string
	SystemInformation
}

// CaptureURL is a time-limited link to the latest image captured by a device.
type CaptureURL struct {
	URL       string
	ExpiresAt time.Time
}
