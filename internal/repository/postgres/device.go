package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/pits-server/internal/model"
	"github.com/dtroode/pits-server/internal/repository"
)

var _ model.DeviceStore = (*DeviceRepository)(nil)

const deviceColumns = `id, mac_address, version, last_update, cpu_utilization, total_memory_bytes, used_memory_bytes`

type DeviceRepository struct {
	db Querier
}

func NewDeviceRepository(db Querier) *DeviceRepository {
	return &DeviceRepository{
		db: db,
	}
}

func (r *DeviceRepository) Get(ctx context.Context, id string) (model.Device, bool, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE id = $1`

	device, err := scanDevice(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Device{}, false, nil
		}
		return model.Device{}, false, model.NewRepositoryError(model.EntityDevice, err)
	}

	return device, true, nil
}

func (r *DeviceRepository) Save(ctx context.Context, device model.Device) error {
	query := `INSERT INTO devices (` + deviceColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  ON CONFLICT (id) DO UPDATE SET
			  mac_address = EXCLUDED.mac_address,
			  version = EXCLUDED.version,
			  last_update = EXCLUDED.last_update,
			  cpu_utilization = EXCLUDED.cpu_utilization,
			  total_memory_bytes = EXCLUDED.total_memory_bytes,
			  used_memory_bytes = EXCLUDED.used_memory_bytes`

	_, err := r.db.Exec(ctx, query,
		device.ID, device.MACAddress, device.Version, device.LastUpdate.UTC().Truncate(time.Millisecond),
		device.CPUUtilization, device.TotalMemoryBytes, device.UsedMemoryBytes,
	)
	if err != nil {
		return model.NewRepositoryError(model.EntityDevice, err)
	}

	return nil
}

func (r *DeviceRepository) BatchGetByOwners(ctx context.Context, owners []model.DeviceOwner) ([]model.Device, error) {
	ids := repository.DeviceIDs(owners)
	if len(ids) == 0 {
		return []model.Device{}, nil
	}

	query := `SELECT ` + deviceColumns + ` FROM devices WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, model.NewRepositoryError(model.EntityDevice, err)
	}
	defer rows.Close()

	devices := make([]model.Device, 0, len(ids))
	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, model.NewRepositoryError(model.EntityDevice, err)
		}
		devices = append(devices, device)
	}
	if err := rows.Err(); err != nil {
		return nil, model.NewRepositoryError(model.EntityDevice, err)
	}

	return devices, nil
}

func scanDevice(row pgx.Row) (model.Device, error) {
	var device model.Device
	err := row.Scan(
		&device.ID, &device.MACAddress, &device.Version, &device.LastUpdate,
		&device.CPUUtilization, &device.TotalMemoryBytes, &device.UsedMemoryBytes,
	)
	if err != nil {
		return model.Device{}, err
	}
	device.LastUpdate = device.LastUpdate.UTC()
	return device, nil
}
