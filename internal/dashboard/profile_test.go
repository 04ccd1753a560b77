package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thesrcielos/CodingTracker/internal/user"
)

func TestDecodeIdentity(t *testing.T) {
	token, err := user.GenerateJWT([]byte("server-key"), &user.User{ID: "u1", Username: "alice"}, time.Now())
	require.NoError(t, err)

	profile := DecodeIdentity(token)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, defaultDisplayEmail, profile.Email)
}

func TestDecodeIdentity_DoesNotVerify(t *testing.T) {
	forged, err := user.GenerateJWT([]byte("attacker-key"), &user.User{ID: "u9", Username: "mallory"}, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, "mallory", DecodeIdentity(forged).Username)
}

func TestDecodeIdentity_Garbage(t *testing.T) {
	assert.Equal(t, Profile{Username: "User", Email: "user@example.com"}, DecodeIdentity("garbage"))
	assert.Equal(t, Profile{Username: "User", Email: "user@example.com"}, DecodeIdentity(""))
}
