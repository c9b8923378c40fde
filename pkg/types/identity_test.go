package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityValidate(t *testing.T) {
	tests := []struct {
		name     string
		identity Identity
		wantErr  bool
	}{
		{
			name: "valid staff identity",
			identity: Identity{
				StaffID:    "S-100",
				Name:       "Sample Staff",
				Role:       RoleStaff,
				StoreID:    "C42",
				Credential: "QWXTY",
			},
		},
		{
			name: "valid admin identity without store",
			identity: Identity{
				StaffID:    "admin_user",
				Name:       "Admin",
				Role:       RoleAdmin,
				Credential: "secret",
			},
		},
		{
			name: "missing role rejected",
			identity: Identity{
				StaffID:    "S-100",
				Credential: "QWXTY",
			},
			wantErr: true,
		},
		{
			name: "missing credential rejected",
			identity: Identity{
				StaffID: "S-100",
				Role:    RoleStaff,
			},
			wantErr: true,
		},
		{
			name: "unknown role rejected",
			identity: Identity{
				StaffID:    "S-100",
				Role:       "manager",
				Credential: "QWXTY",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.identity.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedState)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleStaff))
	assert.False(t, ValidRole(""))
	assert.False(t, ValidRole("manager"))
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "DEMO", NormalizeCode("demo"))
	assert.Equal(t, "DEMO", NormalizeCode("  DeMo "))
	assert.Equal(t, "A1B2C", NormalizeCode("a1b2c"))
	assert.Equal(t, "", NormalizeCode("   "))
}

func TestAccessCodeKeyNormalizes(t *testing.T) {
	a := AccessCode{Code: "demo", StaffID: "S-1"}
	b := AccessCode{Code: "DEMO", StaffID: "S-2"}
	assert.Equal(t, a.Key(), b.Key())
}
