package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	require.Equal(t, RoleAdopter, ParseRole("adotante"))
	require.Equal(t, RoleOrganization, ParseRole(" ONG "))
	require.Equal(t, RoleOrganization, ParseRole("organization"))
	require.Equal(t, Role(""), ParseRole("admin"))
}

func TestClaimsIs_RequiresUserID(t *testing.T) {
	require.False(t, Claims{Role: RoleAdopter}.Is(RoleAdopter))
	require.True(t, Claims{UserID: "adotante-1", Role: RoleAdopter}.Is(RoleAdopter))
	require.False(t, Claims{UserID: "ong-1", Role: RoleOrganization}.Is(RoleAdopter))
}
