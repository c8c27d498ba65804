package handler

import (
	"time"

	"github.com/dtroode/pits-server/internal/model"
)

// Timestamps are sent as milliseconds since epoch.

type systemInformationDTO struct {
	CPUUtilization   float64 `json:"cpuUtilization"`
	TotalMemoryBytes int64   `json:"totalMemoryBytes"`
	UsedMemoryBytes  int64   `json:"usedMemoryBytes"`
}

type deviceDTO struct {
	ID                string               `json:"id"`
	MACAddress        string               `json:"macAddress"`
	Version           string               `json:"version"`
	LastUpdate        int64                `json:"lastUpdate"`
	SystemInformation systemInformationDTO `json:"systemInformation"`
}

type userDTO struct {
	EmailAddress string `json:"emailAddress"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Image        string `json:"image"`
}

type ownerDTO struct {
	User       userDTO `json:"user"`
	Permission string  `json:"permission"`
}

type sessionDTO struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type authURLResponse struct {
	AuthURL string `json:"authUrl"`
}

type sessionResponse struct {
	Session sessionDTO `json:"session"`
}

type userResponse struct {
	User userDTO `json:"user"`
}

type deviceResponse struct {
	Device deviceDTO `json:"device"`
}

type devicesResponse struct {
	Devices   []deviceDTO `json:"devices"`
	NextToken *string     `json:"nextToken"`
}

type ownersResponse struct {
	Owners []ownerDTO `json:"owners"`
}

type captureResponse struct {
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expiresIn"`
	ExpiresAt int64  `json:"expiresAt"`
}

func toDeviceDTO(d model.Device) deviceDTO {
	return deviceDTO{
		ID:         d.ID,
		MACAddress: d.MACAddress,
		Version:    d.Version,
		LastUpdate: d.LastUpdate.UnixMilli(),
		SystemInformation: systemInformationDTO{
			CPUUtilization:   d.CPUUtilization,
			TotalMemoryBytes: d.TotalMemoryBytes,
			UsedMemoryBytes:  d.UsedMemoryBytes,
		},
	}
}

func toUserDTO(u model.User) userDTO {
	return userDTO{
		EmailAddress: u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Image:        u.Image,
	}
}

func toSessionDTO(s model.Session) sessionDTO {
	return sessionDTO{Token: s.Token, ExpiresAt: s.ExpiresAt.UnixMilli()}
}

func toCaptureResponse(c model.CaptureURL, now time.Time) captureResponse {
	return captureResponse{
		URL:       c.URL,
		ExpiresIn: int64(c.ExpiresAt.Sub(now).Round(time.Second).Seconds()),
		ExpiresAt: c.ExpiresAt.UnixMilli(),
	}
}
