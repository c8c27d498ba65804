package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealer_RoundTrip(t *testing.T) {
	s := NewSealer("secret")

	token, err := s.Seal("a@b.c", "Device", `{"deviceId":"d1"}`)
	require.NoError(t, err)
	assert.NotContains(t, token, "d1")

	cursor, err := s.Open("a@b.c", "Device", token)
	require.NoError(t, err)
	assert.Equal(t, `{"deviceId":"d1"}`, cursor)
}

func TestSealer_EmptyCursor(t *testing.T) {
	s := NewSealer("secret")

	token, err := s.Seal("a@b.c", "Device", "")
	require.NoError(t, err)
	assert.Empty(t, token)

	cursor, err := s.Open("a@b.c", "Device", "")
	require.NoError(t, err)
	assert.Empty(t, cursor)
}

func TestSealer_Rejects(t *testing.T) {
	s := NewSealer("secret")
	token, err := s.Seal("a@b.c", "Device", "cursor")
	require.NoError(t, err)

	tests := []struct {
		name   string
		sealer *Sealer
		owner  string
		header string
		token  string
	}{
		{name: "other owner", sealer: s, owner: "x@y.z", header: "Device", token: token},
		{name: "other header", sealer: s, owner: "a@b.c", header: "User", token: token},
		{name: "other secret", sealer: NewSealer("other"), owner: "a@b.c", header: "Device", token: token},
		{name: "not base64", sealer: s, owner: "a@b.c", header: "Device", token: "%%%"},
		{name: "not json", sealer: s, owner: "a@b.c", header: "Device", token: "bm90LWpzb24"},
		{name: "truncated", sealer: s, owner: "a@b.c", header: "Device", token: token[:len(token)-4]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.sealer.Open(tt.owner, tt.header, tt.token)
			assert.ErrorIs(t, err, ErrInvalidCursor)
		})
	}
}
