package dynamo

import (
	"time"

	"github.com/dtroode/pits-server/internal/model"
)

const (
	deviceKey = "id"
	userKey   = "email"
	// ownerIndex is the global secondary index keyed by ownerId, deviceId.
	ownerIndex = "ownerId-index"
)

type systemInformationItem struct {
	CPUUtilization   float64 `dynamodbav:"cpuUtilization"`
	TotalMemoryBytes int64   `dynamodbav:"totalMemoryBytes"`
	UsedMemoryBytes  int64   `dynamodbav:"usedMemoryBytes"`
}

type deviceItem struct {
	ID                string                `dynamodbav:"id"`
	MACAddress        string                `dynamodbav:"macAddress"`
	Version           string                `dynamodbav:"version"`
	LastUpdate        int64                 `dynamodbav:"lastUpdate"`
	SystemInformation systemInformationItem `dynamodbav:"systemInformation"`
}

func toDeviceItem(d model.Device) deviceItem {
	return deviceItem{
		ID:         d.ID,
		MACAddress: d.MACAddress,
		Version:    d.Version,
		LastUpdate: d.LastUpdate.UnixMilli(),
		SystemInformation: systemInformationItem{
			CPUUtilization:   d.CPUUtilization,
			TotalMemoryBytes: d.TotalMemoryBytes,
			UsedMemoryBytes:  d.UsedMemoryBytes,
		},
	}
}

func (i deviceItem) model() model.Device {
	return model.Device{
		ID:         i.ID,
		MACAddress: i.MACAddress,
		Version:    i.Version,
		LastUpdate: time.UnixMilli(i.LastUpdate).UTC(),
		SystemInformation: model.SystemInformation{
			CPUUtilization:   i.SystemInformation.CPUUtilization,
			TotalMemoryBytes: i.SystemInformation.TotalMemoryBytes,
			UsedMemoryBytes:  i.SystemInformation.UsedMemoryBytes,
		},
	}
}

type userItem struct {
	Email     string `dynamodbav:"email"`
	FirstName string `dynamodbav:"firstName"`
	LastName  string `dynamodbav:"lastName"`
	Image     string `dynamodbav:"image"`
}

func toUserItem(u model.User) userItem {
	return userItem{Email: u.Email, FirstName: u.FirstName, LastName: u.LastName, Image: u.Image}
}

func (i userItem) model() model.User {
	return model.User{Email: i.Email, FirstName: i.FirstName, LastName: i.LastName, Image: i.Image}
}

type deviceOwnerItem struct {
	DeviceID   string `dynamodbav:"deviceId"`
	OwnerID    string `dynamodbav:"ownerId"`
	Permission string `dynamodbav:"permission,omitempty"`
}

func (i deviceOwnerItem) model() (model.DeviceOwner, error) {
	p, err := model.ParsePermission(i.Permission)
	if err != nil {
		return model.DeviceOwner{}, err
	}
	return model.DeviceOwner{DeviceID: i.DeviceID, OwnerID: i.OwnerID, Permission: p}, nil
}
