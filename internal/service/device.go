package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/dtroode/pits-server/internal/logger"
	"github.com/dtroode/pits-server/internal/model"
	"github.com/dtroode/pits-server/internal/query"
	"github.com/dtroode/pits-server/internal/repository"
)

// CaptureConfig locates device captures in object storage.
type CaptureConfig struct {
	ImagePrefix string
	URLTTL      time.Duration
}

// Devices serves ownership-scoped device reads.
type Devices struct {
	devices model.DeviceStore
	users   model.UserStore
	owners  model.DeviceOwnerStore
	storage model.ObjectStorage
	cursors *query.Sealer
	capture CaptureConfig
	logger  *logger.Logger
	now     func() time.Time
}

func NewDevices(
	devices model.DeviceStore,
	users model.UserStore,
	owners model.DeviceOwnerStore,
	storage model.ObjectStorage,
	cursors *query.Sealer,
	capture CaptureConfig,
	logger *logger.Logger,
) *Devices {
	return &Devices{
		devices: devices,
		users:   users,
		owners:  owners,
		storage: storage,
		cursors: cursors,
		capture: capture,
		logger:  logger,
		now:     time.Now,
	}
}

// Get returns a device the caller holds any ownership on.
func (d *Devices) Get(ctx context.Context, caller model.ClientConfig, id string) (model.Device, error) {
	if _, err := d.ownership(ctx, caller, id); err != nil {
		return model.Device{}, err
	}

	device, ok, err := d.devices.Get(ctx, id)
	if err != nil {
		d.logger.Error("Device service: failed to get device",
			"device_id", id,
			"error", err.Error())
		return model.Device{}, fmt.Errorf("failed to get device: %w", err)
	}
	if !ok {
		return model.Device{}, fmt.Errorf("%w: device %s", model.ErrNotFound, id)
	}

	return device, nil
}

// List returns one page of devices owned by the caller. nextToken is the
// sealed cursor of the previous page.
func (d *Devices) List(ctx context.Context, caller model.ClientConfig, nextToken string, limit int) (query.Page[model.Device], error) {
	header := string(model.EntityDevice)

	cursor, err := d.cursors.Open(caller.Owner, header, nextToken)
	if err != nil {
		d.logger.Info("Device service: rejected next token",
			"owner", caller.Owner,
			"error", err.Error())
		return query.Page[model.Device]{}, fmt.Errorf("%w: %w", model.ErrBadRequest, err)
	}

	page, err := repository.ListDevicesByOwner(ctx, d.owners, caller.Owner, cursor, limit)
	if err != nil {
		d.logger.Error("Device service: failed to list device owners",
			"owner", caller.Owner,
			"error", err.Error())
		return query.Page[model.Device]{}, wrapListError("failed to list device owners", err)
	}

	found, err := d.devices.BatchGetByOwners(ctx, page.Items)
	if err != nil {
		d.logger.Error("Device service: failed to batch get devices",
			"owner", caller.Owner,
			"error", err.Error())
		return query.Page[model.Device]{}, fmt.Errorf("failed to batch get devices: %w", err)
	}

	byID := make(map[string]model.Device, len(found))
	for _, device := range found {
		byID[device.ID] = device
	}
	devices := make([]model.Device, 0, len(found))
	for _, id := range repository.DeviceIDs(page.Items) {
		if device, ok := byID[id]; ok {
			devices = append(devices, device)
		}
	}

	next, err := d.cursors.Seal(caller.Owner, header, page.Cursor)
	if err != nil {
		d.logger.Error("Device service: failed to seal next token",
			"owner", caller.Owner,
			"error", err.Error())
		return query.Page[model.Device]{}, fmt.Errorf("failed to seal next token: %w", err)
	}

	return query.Page[model.Device]{Items: devices, Cursor: next}, nil
}

// Owners lists every owner of a device. The caller needs at least MANAGE on it.
func (d *Devices) Owners(ctx context.Context, caller model.ClientConfig, id string) ([]model.DeviceOwnerView, error) {
	rel, err := d.ownership(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if !rel.Permission.AtLeast(model.PermissionManage) {
		d.logger.Info("Device service: owners listing denied",
			"device_id", id,
			"owner", caller.Owner,
			"permission", rel.Permission)
		return nil, fmt.Errorf("%w: %s permission on device %s", model.ErrForbidden, rel.Permission, id)
	}

	fetch := func(ctx context.Context, p query.Params) (query.Page[model.DeviceOwner], error) {
		return repository.ListOwnersByDevice(ctx, d.owners, id, p.Cursor, p.Limit)
	}

	var relations []model.DeviceOwner
	for page, err := range query.Pages(ctx, query.Params{Limit: query.MaxLimit}, fetch) {
		if err != nil {
			d.logger.Error("Device service: failed to list device owners",
				"device_id", id,
				"error", err.Error())
			return nil, fmt.Errorf("failed to list device owners: %w", err)
		}
		relations = append(relations, page.Items...)
	}

	users, err := d.users.BatchGetByOwners(ctx, relations)
	if err != nil {
		d.logger.Error("Device service: failed to batch get users",
			"device_id", id,
			"error", err.Error())
		return nil, fmt.Errorf("failed to batch get users: %w", err)
	}

	byEmail := make(map[string]model.User, len(users))
	for _, u := range users {
		byEmail[u.Email] = u
	}

	views := make([]model.DeviceOwnerView, 0, len(relations))
	for _, r := range relations {
		u, ok := byEmail[r.OwnerID]
		if !ok {
			u = model.User{Email: r.OwnerID}
		}
		views = append(views, model.DeviceOwnerView{User: u, Permission: r.Permission})
	}

	return views, nil
}

// CaptureURL returns a presigned link to the latest capture of a device.
func (d *Devices) CaptureURL(ctx context.Context, caller model.ClientConfig, id string) (model.CaptureURL, error) {
	if _, err := d.ownership(ctx, caller, id); err != nil {
		return model.CaptureURL{}, err
	}

	key := path.Join(d.capture.ImagePrefix, id+".jpg")

	exists, err := d.storage.Exists(ctx, key)
	if err != nil {
		d.logger.Error("Device service: failed to stat capture",
			"device_id", id,
			"key", key,
			"error", err.Error())
		return model.CaptureURL{}, fmt.Errorf("failed to stat capture: %w", err)
	}
	if !exists {
		return model.CaptureURL{}, fmt.Errorf("%w: no capture for device %s", model.ErrNotFound, id)
	}

	url, err := d.storage.PresignedURL(ctx, key, d.capture.URLTTL)
	if err != nil {
		d.logger.Error("Device service: failed to presign capture",
			"device_id", id,
			"key", key,
			"error", err.Error())
		return model.CaptureURL{}, fmt.Errorf("failed to presign capture: %w", err)
	}

	return model.CaptureURL{URL: url, ExpiresAt: d.now().Add(d.capture.URLTTL)}, nil
}

// ownership returns the caller's relation to a device or ErrNotFound when there is none.
func (d *Devices) ownership(ctx context.Context, caller model.ClientConfig, id string) (model.DeviceOwner, error) {
	rel, ok, err := d.owners.Get(ctx, id, caller.Owner)
	if err != nil {
		d.logger.Error("Device service: failed to get device owner",
			"device_id", id,
			"owner", caller.Owner,
			"error", err.Error())
		return model.DeviceOwner{}, fmt.Errorf("failed to get device owner: %w", err)
	}
	if !ok {
		d.logger.Debug("Device service: caller does not own device",
			"device_id", id,
			"owner", caller.Owner)
		return model.DeviceOwner{}, fmt.Errorf("%w: device %s", model.ErrNotFound, id)
	}

	return rel, nil
}

func wrapListError(msg string, err error) error {
	if errors.Is(err, query.ErrInvalidCursor) {
		return fmt.Errorf("%w: %s: %w", model.ErrBadRequest, msg, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
