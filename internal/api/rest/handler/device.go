package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dtroode/pits-server/internal/api/rest/response"
	"github.com/dtroode/pits-server/internal/logger"
	"github.com/dtroode/pits-server/internal/model"
	"github.com/dtroode/pits-server/internal/query"
)

// DeviceService defines ownership-scoped device reads.
type DeviceService interface {
	Get(ctx context.Context, caller model.ClientConfig, id string) (model.Device, error)
	List(ctx context.Context, caller model.ClientConfig, nextToken string, limit int) (query.Page[model.Device], error)
	Owners(ctx context.Context, caller model.ClientConfig, id string) ([]model.DeviceOwnerView, error)
	CaptureURL(ctx context.Context, caller model.ClientConfig, id string) (model.CaptureURL, error)
}

// Device handles HTTP endpoints for devices.
type Device struct {
	deviceService  DeviceService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewDevice creates a new Device handler.
func NewDevice(deviceService DeviceService, contextManager model.ContextManager, logger *logger.Logger) *Device {
	return &Device{deviceService: deviceService, contextManager: contextManager, logger: logger}
}

// Get returns a single device.
func (h *Device) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]

	device, err := h.deviceService.Get(r.Context(), caller, id)
	if err != nil {
		h.fail(w, "get", id, err)
		return
	}

	response.JSON(w, http.StatusOK, deviceResponse{Device: toDeviceDTO(device)})
}

// List returns one page of the caller's devices.
func (h *Device) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.WriteError(w, http.StatusBadRequest, response.ErrCodeBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	page, err := h.deviceService.List(r.Context(), caller, q.Get("nextToken"), limit)
	if err != nil {
		h.fail(w, "list", "", err)
		return
	}

	dtos := query.Map(page, toDeviceDTO)
	resp := devicesResponse{Devices: dtos.Items}
	if dtos.HasMore() {
		resp.NextToken = &dtos.Cursor
	}

	response.JSON(w, http.StatusOK, resp)
}

// Owners returns every owner of a device.
func (h *Device) Owners(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]

	owners, err := h.deviceService.Owners(r.Context(), caller, id)
	if err != nil {
		h.fail(w, "owners", id, err)
		return
	}

	resp := ownersResponse{Owners: make([]ownerDTO, 0, len(owners))}
	for _, o := range owners {
		resp.Owners = append(resp.Owners, ownerDTO{User: toUserDTO(o.User), Permission: string(o.Permission)})
	}

	response.JSON(w, http.StatusOK, resp)
}

// Capture returns a presigned URL of the latest device capture.
func (h *Device) Capture(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]

	capture, err := h.deviceService.CaptureURL(r.Context(), caller, id)
	if err != nil {
		h.fail(w, "capture", id, err)
		return
	}

	response.JSON(w, http.StatusOK, toCaptureResponse(capture, time.Now()))
}

func (h *Device) caller(w http.ResponseWriter, r *http.Request) (model.ClientConfig, bool) {
	caller, ok := h.contextManager.GetClientConfigFromContext(r.Context())
	if !ok {
		response.WriteError(w, http.StatusUnauthorized, response.ErrCodeUnauthorized, "unauthorized")
	}
	return caller, ok
}

func (h *Device) fail(w http.ResponseWriter, op, id string, err error) {
	h.logger.Info("Device handler: request failed",
		"op", op,
		"device_id", id,
		"error", err.Error())
	response.FromError(w, err)
}
