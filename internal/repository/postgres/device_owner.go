package postgres

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/pits-server/internal/model"
	"github.com/dtroode/pits-server/internal/query"
	"github.com/dtroode/pits-server/internal/repository"
)

var _ model.DeviceOwnerStore = (*DeviceOwnerRepository)(nil)

var deviceOwnerAttributes = map[string]string{
	repository.AttrDeviceID:   "device_id",
	repository.AttrOwnerID:    "owner_id",
	repository.AttrPermission: "permission",
}

// ownerCursor is the keyset position after the last returned relation.
type ownerCursor struct {
	DeviceID string `json:"deviceId"`
	OwnerID  string `json:"ownerId"`
}

type DeviceOwnerRepository struct {
	db Querier
}

func NewDeviceOwnerRepository(db Querier) *DeviceOwnerRepository {
	return &DeviceOwnerRepository{db: db}
}

func (r *DeviceOwnerRepository) Get(ctx context.Context, deviceID, ownerID string) (model.DeviceOwner, bool, error) {
	const sql = `SELECT device_id, owner_id, permission FROM device_owners WHERE device_id = $1 AND owner_id = $2`

	owner, err := scanDeviceOwner(r.db.QueryRow(ctx, sql, deviceID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.DeviceOwner{}, false, nil
		}
		return model.DeviceOwner{}, false, model.NewRepositoryError(model.EntityDeviceOwner, err)
	}

	return owner, true, nil
}

// ListItems returns relations matching the condition ordered by (device_id, owner_id).
func (r *DeviceOwnerRepository) ListItems(ctx context.Context, params query.Params) (query.Page[model.DeviceOwner], error) {
	sql, args, err := compileOwnerQuery(params)
	if err != nil {
		return query.Page[model.DeviceOwner]{}, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return query.Page[model.DeviceOwner]{}, model.NewRepositoryError(model.EntityDeviceOwner, err)
	}
	defer rows.Close()

	size := params.PageSize()
	owners := make([]model.DeviceOwner, 0, size)
	for rows.Next() {
		owner, err := scanDeviceOwner(rows)
		if err != nil {
			return query.Page[model.DeviceOwner]{}, model.NewRepositoryError(model.EntityDeviceOwner, err)
		}
		owners = append(owners, owner)
	}
	if err := rows.Err(); err != nil {
		return query.Page[model.DeviceOwner]{}, model.NewRepositoryError(model.EntityDeviceOwner, err)
	}

	page := query.Page[model.DeviceOwner]{Items: owners}
	if len(owners) > size {
		page.Items = owners[:size]
		last := page.Items[size-1]
		page.Cursor = encodeOwnerCursor(ownerCursor{DeviceID: last.DeviceID, OwnerID: last.OwnerID})
	}

	return page, nil
}

// compileOwnerQuery renders params as a keyset-paginated select fetching one
// row past the page size to detect a following page.
func compileOwnerQuery(params query.Params) (string, []any, error) {
	cond := params.Condition
	if err := cond.Validate(); err != nil {
		return "", nil, fmt.Errorf("%w: %w", model.ErrBadRequest, err)
	}
	column, ok := deviceOwnerAttributes[cond.Attribute]
	if !ok {
		return "", nil, fmt.Errorf("%w: %w: attribute %q is not indexed", model.ErrBadRequest, query.ErrInvalidCondition, cond.Attribute)
	}

	var b strings.Builder
	args := make([]any, 0, 5)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	b.WriteString("SELECT device_id, owner_id, permission FROM device_owners WHERE ")
	switch cond.Operator {
	case query.OpBetween:
		b.WriteString(column + " BETWEEN " + arg(cond.Values[0]) + " AND " + arg(cond.Values[1]))
	case query.OpBeginsWith:
		b.WriteString("starts_with(" + column + ", " + arg(cond.Values[0]) + ")")
	default:
		b.WriteString(column + " " + string(cond.Operator) + " " + arg(cond.Values[0]))
	}

	if params.Cursor != "" {
		after, err := decodeOwnerCursor(params.Cursor)
		if err != nil {
			return "", nil, err
		}
		b.WriteString(" AND (device_id, owner_id) > (" + arg(after.DeviceID) + ", " + arg(after.OwnerID) + ")")
	}

	b.WriteString(" ORDER BY device_id, owner_id LIMIT " + arg(params.PageSize()+1))

	return b.String(), args, nil
}

func encodeOwnerCursor(c ownerCursor) string {
	raw, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeOwnerCursor(s string) (ownerCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return ownerCursor{}, fmt.Errorf("%w: %v", query.ErrInvalidCursor, err)
	}
	var c ownerCursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return ownerCursor{}, fmt.Errorf("%w: %v", query.ErrInvalidCursor, err)
	}
	return c, nil
}

func scanDeviceOwner(row pgx.Row) (model.DeviceOwner, error) {
	var (
		owner      model.DeviceOwner
		permission string
	)
	if err := row.Scan(&owner.DeviceID, &owner.OwnerID, &permission); err != nil {
		return model.DeviceOwner{}, err
	}

	p, err := model.ParsePermission(permission)
	if err != nil {
		return model.DeviceOwner{}, err
	}
	owner.Permission = p

	return owner, nil
}
