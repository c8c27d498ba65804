// Package repository holds the backend-independent parts of the entity stores.
package repository

import (
	"context"

	"github.com/dtroode/pits-server/internal/model"
	"github.com/dtroode/pits-server/internal/query"
)

// Indexed attributes of the device ownership relation.
const (
	AttrDeviceID   = "deviceId"
	AttrOwnerID    = "ownerId"
	AttrPermission = "permission"
)

// ListDevicesByOwner returns one page of relations held by ownerID.
func ListDevicesByOwner(ctx context.Context, store model.DeviceOwnerStore, ownerID, cursor string, limit int) (query.Page[model.DeviceOwner], error) {
	return store.ListItems(ctx, query.Params{
		Condition: query.Attribute(AttrOwnerID).EqualTo(ownerID),
		Cursor:    cursor,
		Limit:     limit,
	})
}

// ListOwnersByDevice returns one page of relations on deviceID.
func ListOwnersByDevice(ctx context.Context, store model.DeviceOwnerStore, deviceID, cursor string, limit int) (query.Page[model.DeviceOwner], error) {
	return store.ListItems(ctx, query.Params{
		Condition: query.Attribute(AttrDeviceID).EqualTo(deviceID),
		Cursor:    cursor,
		Limit:     limit,
	})
}

// DeviceIDs projects relations to distinct device ids, keeping first-seen order.
func DeviceIDs(owners []model.DeviceOwner) []string {
	return distinct(owners, func(o model.DeviceOwner) string { return o.DeviceID })
}

// OwnerIDs projects relations to distinct owner ids, keeping first-seen order.
func OwnerIDs(owners []model.DeviceOwner) []string {
	return distinct(owners, func(o model.DeviceOwner) string { return o.OwnerID })
}

func distinct(owners []model.DeviceOwner, key func(model.DeviceOwner) string) []string {
	seen := make(map[string]struct{}, len(owners))
	ids := make([]string, 0, len(owners))
	for _, o := range owners {
		id := key(o)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
