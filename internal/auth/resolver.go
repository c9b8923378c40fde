// Package auth resolves a submitted credential into a session identity,
// trying the remote service first and then an ordered chain of offline
// fallbacks.
package auth

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/internal/demo"
	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/pkg/types"
)

// reservedAdminIdentifier authenticates an administrator offline. Compared
// case-insensitively, regardless of which role was requested.
const reservedAdminIdentifier = "mohamadhassoun012@gmail.com"

// reservedStaffPasswords authenticate a generic staff demo session offline.
var reservedStaffPasswords = map[string]bool{
	"abcde": true,
	"demo":  true,
}

// RemoteAuthenticator is the slice of the gateway the resolver needs.
type RemoteAuthenticator interface {
	Login(ctx context.Context, role, credential string) (types.Identity, error)
}

// Resolver decides whether a login attempt yields a remote-authenticated
// identity, a recognized fallback identity, or a failure.
type Resolver struct {
	remote RemoteAuthenticator
	log    *logrus.Logger
}

// NewResolver creates a resolver backed by the given remote authenticator.
func NewResolver(remote RemoteAuthenticator, log *logrus.Logger) *Resolver {
	return &Resolver{remote: remote, log: log}
}

// Resolve produces a session identity for the submitted credential.
//
// An explicitly requested demo session short-circuits without any network
// call. Otherwise the remote service is attempted; on remote failure the
// fallback chain runs in strict order: reserved admin identifier, reserved
// staff passwords, then a lookup of the credential in the locally known
// access codes. A code match yields a locally-authenticated identity that is
// demo-flagged so its mutations stay local. An access code issued entirely
// offline can still authenticate its owner anywhere its code has been
// cached, trading strict security for availability.
//
// If the chain is exhausted, the original remote error is returned.
func (r *Resolver) Resolve(ctx context.Context, role, credential string, demoRequested bool, codes []types.AccessCode, staff []types.Staff) (types.Identity, error) {
	if demoRequested {
		r.log.WithField("role", role).Debug("demo session requested")
		return demoIdentity(role, credential), nil
	}

	identity, remoteErr := r.remote.Login(ctx, role, credential)
	if remoteErr == nil {
		return identity, nil
	}
	r.log.WithField("role", role).WithError(remoteErr).Debug("remote login failed, trying fallbacks")

	trimmed := strings.TrimSpace(credential)

	if strings.EqualFold(trimmed, reservedAdminIdentifier) {
		return demoIdentity(types.RoleAdmin, credential), nil
	}

	if role == types.RoleStaff && reservedStaffPasswords[strings.ToLower(trimmed)] {
		return demoIdentity(types.RoleStaff, credential), nil
	}

	if role == types.RoleStaff {
		if identity, ok := lookupAccessCode(trimmed, codes, staff, credential); ok {
			r.log.WithField("staffId", identity.StaffID).Info("authenticated locally via cached access code")
			return identity, nil
		}
	}

	return types.Identity{}, remoteErr
}

// lookupAccessCode matches the credential against the merged access-code
// collection, case-insensitively. The display name falls back to the bare
// staff identifier when no staff record is cached for the code.
func lookupAccessCode(credential string, codes []types.AccessCode, staff []types.Staff, rawCredential string) (types.Identity, bool) {
	normalized := types.NormalizeCode(credential)
	if normalized == "" {
		return types.Identity{}, false
	}

	for _, code := range codes {
		if code.Key() != normalized {
			continue
		}

		name := code.StaffID
		for _, s := range staff {
			if s.StaffID == code.StaffID {
				name = s.Name
				break
			}
		}

		return types.Identity{
			StaffID:    code.StaffID,
			Name:       name,
			Role:       types.RoleStaff,
			StoreID:    code.StoreCode,
			Credential: rawCredential,
			IsDemo:     true,
		}, true
	}
	return types.Identity{}, false
}

// demoIdentity synthesizes the fixed offline identity for a role.
func demoIdentity(role, credential string) types.Identity {
	staffID := demo.StaffID
	name := "Staff"
	if role == types.RoleAdmin {
		staffID = demo.AdminStaffID
		name = "Admin"
	}
	return types.Identity{
		StaffID:    staffID,
		Name:       name,
		Role:       role,
		StoreID:    demo.DefaultStore,
		Credential: credential,
		IsDemo:     true,
	}
}
