//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/pits-server/internal/model"
	"github.com/dtroode/pits-server/internal/query"
	"github.com/dtroode/pits-server/internal/repository"
	repo "github.com/dtroode/pits-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "pits_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/pits_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestRepositories(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	seed := []string{
		`INSERT INTO device_owners (device_id, owner_id, permission) VALUES
			('cam-1', 'a@b.c', 'ADMIN'), ('cam-2', 'a@b.c', 'VIEW'), ('cam-3', 'a@b.c', 'MANAGE'),
			('cam-1', 'd@e.f', 'VIEW')`,
	}
	for _, stmt := range seed {
		_, err := conn.Exec(ctx, stmt)
		require.NoError(t, err)
	}

	t.Run("device_repository", func(t *testing.T) {
		dr := repo.NewDeviceRepository(conn)
		d := model.Device{
			ID:         "cam-1",
			MACAddress: "b8:27:eb:00:00:01",
			Version:    "1.0.0",
			LastUpdate: time.Now().UTC().Truncate(time.Millisecond),
			SystemInformation: model.SystemInformation{
				CPUUtilization:   0.5,
				TotalMemoryBytes: 1024,
				UsedMemoryBytes:  512,
			},
		}
		require.NoError(t, dr.Save(ctx, d))

		got, ok, err := dr.Get(ctx, "cam-1")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, d, got)

		d.Version = "1.1.0"
		require.NoError(t, dr.Save(ctx, d))
		got, _, err = dr.Get(ctx, "cam-1")
		require.NoError(t, err)
		require.Equal(t, "1.1.0", got.Version)

		_, ok, err = dr.Get(ctx, "cam-404")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("device_owner_repository", func(t *testing.T) {
		or := repo.NewDeviceOwnerRepository(conn)

		var ids []string
		for page, err := range query.Pages(ctx, query.Params{
			Condition: query.Attribute(repository.AttrOwnerID).EqualTo("a@b.c"),
			Limit:     2,
		}, or.ListItems) {
			require.NoError(t, err)
			require.LessOrEqual(t, len(page.Items), 2)
			for _, o := range page.Items {
				ids = append(ids, o.DeviceID)
			}
		}
		require.Equal(t, []string{"cam-1", "cam-2", "cam-3"}, ids)

		owners, err := repository.ListOwnersByDevice(ctx, or, "cam-1", "", 10)
		require.NoError(t, err)
		require.Len(t, owners.Items, 2)

		rel, ok, err := or.Get(ctx, "cam-3", "a@b.c")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, model.PermissionManage, rel.Permission)
	})

	t.Run("user_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		require.NoError(t, ur.Save(ctx, model.User{Email: "a@b.c", FirstName: "Ann"}))
		require.NoError(t, ur.Save(ctx, model.User{Email: "d@e.f", FirstName: "Dan"}))

		users, err := ur.BatchGetByOwners(ctx, []model.DeviceOwner{
			{DeviceID: "cam-1", OwnerID: "a@b.c"},
			{DeviceID: "cam-1", OwnerID: "d@e.f"},
			{DeviceID: "cam-1", OwnerID: "nobody@x.y"},
		})
		require.NoError(t, err)
		require.Len(t, users, 2)
	})

	t.Run("nonce_repository", func(t *testing.T) {
		nr := repo.NewNonceRepository(conn)
		now := time.Now()
		require.NoError(t, nr.Create(ctx, model.Nonce{ID: "n1", Scope: "google", CreatedAt: now, ExpiresAt: now.Add(model.NonceDuration)}))
		require.NoError(t, nr.Create(ctx, model.Nonce{ID: "n2", Scope: "google", CreatedAt: now, ExpiresAt: now.Add(-time.Second)}))

		ok, err := nr.Consume(ctx, "n1", "github")
		require.NoError(t, err)
		require.False(t, ok)

		ok, err = nr.Consume(ctx, "n1", "google")
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = nr.Consume(ctx, "n1", "google")
		require.NoError(t, err)
		require.False(t, ok)

		ok, err = nr.Consume(ctx, "n2", "google")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("client_config_repository", func(t *testing.T) {
		cr := repo.NewClientConfigRepository(conn)
		first, err := cr.Create(ctx, model.ClientConfig{ClientID: "c1", API: model.SessionAPI, Owner: "a@b.c", Scopes: []string{model.DefaultSessionGrant}, CreatedAt: time.Now()})
		require.NoError(t, err)
		second, err := cr.Create(ctx, model.ClientConfig{ClientID: "c2", API: model.SessionAPI, Owner: "a@b.c", Scopes: []string{model.DefaultSessionGrant}, CreatedAt: time.Now()})
		require.NoError(t, err)
		require.Equal(t, first.ClientID, second.ClientID)

		got, ok, err := cr.Get(ctx, model.SessionAPI, "c1")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "a@b.c", got.Owner)

		configs, err := cr.ListByOwner(ctx, "a@b.c")
		require.NoError(t, err)
		require.Len(t, configs, 1)
	})
}
