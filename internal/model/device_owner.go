package model

import (
	"context"
	"fmt"

	"github.com/dtroode/pits-server/internal/query"
)

// DeviceOwnerStore defines read operations for device ownership relations.
type DeviceOwnerStore interface {
	Get(ctx context.Context, deviceID, ownerID string) (DeviceOwner, bool, error)
	ListItems(ctx context.Context, params query.Params) (query.Page[DeviceOwner], error)
}

// DeviceOwner relates a user to a device with a permission level.
type DeviceOwner struct {
	DeviceID   string
	OwnerID    string
	Permission Permission
}

// DeviceOwnerView is an owner of a device joined with its user record.
type DeviceOwnerView struct {
	User       User
	Permission Permission
}

// Permission is the access level an owner holds on a device.
type Permission string

const (
	PermissionAdmin  Permission = "ADMIN"
	PermissionManage Permission = "MANAGE"
	PermissionView   Permission = "VIEW"
)

// ParsePermission reads a stored permission. An empty value means VIEW.
func ParsePermission(s string) (Permission, error) {
	switch p := Permission(s); p {
	case "":
		return PermissionView, nil
	case PermissionAdmin, PermissionManage, PermissionView:
		return p, nil
	default:
		return "", fmt.Errorf("unknown permission %q", s)
	}
}

// Rank orders permissions: VIEW < MANAGE < ADMIN. Unknown values rank lowest.
func (p Permission) Rank() int {
	switch p {
	case PermissionAdmin:
		return 3
	case PermissionManage:
		return 2
	case PermissionView:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether p grants everything required grants.
func (p Permission) AtLeast(required Permission) bool {
	return p.Rank() >= required.Rank() && p.Rank() > 0
}
