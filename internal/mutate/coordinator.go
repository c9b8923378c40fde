// Package mutate executes every create/update/delete operation, attempting
// the remote gateway first and transparently falling back to local-only
// effects on failure.
//
// The policy is at-least-attempted, never-discard: a failed remote write is
// downgraded to a local write rather than dropped, and the caller receives
// an explicit outcome instead of a side-channel alert. Demo sessions never
// contact the gateway at all.
package mutate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/internal/cache"
	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/internal/demo"
	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/internal/gateway"
	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/internal/session"
	"github.com/mohamadhassoun1/Majid-Al-Futaim-Expiry-Trakinig/pkg/types"
)

// Outcome reports how a mutation landed.
type Outcome int

const (
	// OutcomeSynced means the remote accepted the mutation and its canonical
	// record was adopted.
	OutcomeSynced Outcome = iota

	// OutcomeLocal means the session is demo-flagged; the effect is local by
	// definition and nothing was attempted remotely.
	OutcomeLocal

	// OutcomeDowngraded means the remote call failed and the mutation was
	// applied locally instead. The change is preserved but not synchronized.
	OutcomeDowngraded
)

// String returns a short label for display.
func (o Outcome) String() string {
	switch o {
	case OutcomeSynced:
		return "synced"
	case OutcomeLocal:
		return "local"
	case OutcomeDowngraded:
		return "local-only (not synchronized)"
	default:
		return "unknown"
	}
}

// ItemResult is the explicit result of an item mutation. Notice carries the
// user-facing message for a downgrade; Cause its classified error.
type ItemResult struct {
	Item    types.Item
	Outcome Outcome
	Notice  string
	Cause   error
}

// StaffResult is the result of staff+access-code creation.
type StaffResult struct {
	Staff   types.Staff
	Code    types.AccessCode
	Outcome Outcome
	Notice  string
	Cause   error
}

// DeleteResult is the result of a deletion.
type DeleteResult struct {
	Outcome Outcome
	Notice  string
	Cause   error
}

// ItemDraft is the user-submitted shape of a new item. StoreCode is
// optional; it defaults to the session's store.
type ItemDraft struct {
	Name             string
	Category         string
	ExpirationDate   string
	NotificationDays int
	Quantity         int
	ImageURL         string
	StoreCode        string
}

// RemoteMutator is the slice of the gateway the coordinator needs.
type RemoteMutator interface {
	AddItem(ctx context.Context, item types.Item, credential string) (types.Item, error)
	UpdateItem(ctx context.Context, item types.Item, credential string) (types.Item, error)
	DeleteItem(ctx context.Context, itemID, credential string) error
	AddStaff(ctx context.Context, storeCode, staffID, credential string) (gateway.StaffProvision, error)
	DeleteAccessCode(ctx context.Context, code, credential string) error
}

// ConfirmFunc gates destructive operations. It must return true to proceed.
type ConfirmFunc func(prompt string) bool

// Coordinator routes mutations between the remote gateway and local state.
type Coordinator struct {
	sessions *session.Manager
	remote   RemoteMutator
	store    *cache.Store
	confirm  ConfirmFunc
	log      *logrus.Logger

	// Overridable in tests.
	now     func() time.Time
	newCode func() string
}

// NewCoordinator creates a coordinator over the session manager, gateway,
// and cache store.
func NewCoordinator(sessions *session.Manager, remote RemoteMutator, store *cache.Store, confirm ConfirmFunc, log *logrus.Logger) *Coordinator {
	return &Coordinator{
		sessions: sessions,
		remote:   remote,
		store:    store,
		confirm:  confirm,
		log:      log,
		now:      time.Now,
		newCode:  generateAccessCode,
	}
}

// generateAccessCode produces a short uppercase code for offline staff
// provisioning. Visually similar to server-issued codes but generated
// client-side.
func generateAccessCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:5])
}

// AddItem creates an item for the active session.
//
// Demo sessions apply the item locally with a demo-prefixed identifier. Live
// sessions attempt the gateway and adopt the server's canonical record; on
// failure the item is kept with an offline-prefixed identifier so a later
// sync can tell it has never been seen by the server.
func (c *Coordinator) AddItem(ctx context.Context, draft ItemDraft) (ItemResult, error) {
	identity, ok := c.sessions.Identity()
	if !ok {
		return ItemResult{}, types.ErrNoSession
	}

	item := types.Item{
		Name:             draft.Name,
		Category:         draft.Category,
		ExpirationDate:   draft.ExpirationDate,
		NotificationDays: draft.NotificationDays,
		Quantity:         draft.Quantity,
		ImageURL:         draft.ImageURL,
		AddedByStaffID:   identity.StaffID,
		StoreCode:        c.storeFor(draft.StoreCode, identity),
	}

	if identity.IsDemo {
		item.ItemID = fmt.Sprintf("demo_item_%d", c.now().UnixMilli())
		items := append(c.sessions.Collections().Items, item)
		if err := c.setItems(items, true); err != nil {
			return ItemResult{}, err
		}
		return ItemResult{Item: item, Outcome: OutcomeLocal}, nil
	}

	created, err := c.remote.AddItem(ctx, item, identity.Credential)
	if err == nil {
		items := append(c.sessions.Collections().Items, created)
		if serr := c.setItems(items, false); serr != nil {
			return ItemResult{}, serr
		}
		return ItemResult{Item: created, Outcome: OutcomeSynced}, nil
	}

	// Downgrade: keep the user's intent with a locally-synthesized
	// identifier distinguishable from server-assigned ones.
	c.log.WithError(err).Warn("remote add failed, adding item locally")
	item.ItemID = fmt.Sprintf("offline_item_%d", c.now().UnixMilli())
	items := append(c.sessions.Collections().Items, item)
	if serr := c.setItems(items, false); serr != nil {
		return ItemResult{}, serr
	}
	return ItemResult{
		Item:    item,
		Outcome: OutcomeDowngraded,
		Notice:  downgradeNotice("item added", err),
		Cause:   err,
	}, nil
}

// UpdateItem replaces an existing item. The submitted identifier is kept on
// downgrade, since an update targets a record that already exists.
func (c *Coordinator) UpdateItem(ctx context.Context, item types.Item) (ItemResult, error) {
	identity, ok := c.sessions.Identity()
	if !ok {
		return ItemResult{}, types.ErrNoSession
	}

	if identity.IsDemo {
		items := replaceItem(c.sessions.Collections().Items, item)
		if err := c.setItems(items, true); err != nil {
			return ItemResult{}, err
		}
		return ItemResult{Item: item, Outcome: OutcomeLocal}, nil
	}

	updated, err := c.remote.UpdateItem(ctx, item, identity.Credential)
	if err == nil {
		items := replaceItem(c.sessions.Collections().Items, updated)
		if serr := c.setItems(items, false); serr != nil {
			return ItemResult{}, serr
		}
		return ItemResult{Item: updated, Outcome: OutcomeSynced}, nil
	}

	c.log.WithError(err).Warn("remote update failed, updating item locally")
	items := replaceItem(c.sessions.Collections().Items, item)
	if serr := c.setItems(items, false); serr != nil {
		return ItemResult{}, serr
	}
	return ItemResult{
		Item:    item,
		Outcome: OutcomeDowngraded,
		Notice:  downgradeNotice("item updated", err),
		Cause:   err,
	}, nil
}

// DeleteItem removes an item. A failed remote deletion still removes the
// item locally.
func (c *Coordinator) DeleteItem(ctx context.Context, itemID string) (DeleteResult, error) {
	identity, ok := c.sessions.Identity()
	if !ok {
		return DeleteResult{}, types.ErrNoSession
	}

	if identity.IsDemo {
		if err := c.setItems(dropItem(c.sessions.Collections().Items, itemID), true); err != nil {
			return DeleteResult{}, err
		}
		return DeleteResult{Outcome: OutcomeLocal}, nil
	}

	remoteErr := c.remote.DeleteItem(ctx, itemID, identity.Credential)
	if err := c.setItems(dropItem(c.sessions.Collections().Items, itemID), false); err != nil {
		return DeleteResult{}, err
	}
	if remoteErr != nil {
		c.log.WithError(remoteErr).Warn("remote delete failed, deleting item locally")
		return DeleteResult{
			Outcome: OutcomeDowngraded,
			Notice:  downgradeNotice("item deleted", remoteErr),
			Cause:   remoteErr,
		}, nil
	}
	return DeleteResult{Outcome: OutcomeSynced}, nil
}

// AddStaffAndCode creates a staff member and issues an access code. Admin
// only. The local path also mirrors the new pair into the demo namespace so
// a later offline fallback login can resolve the code before the next bulk
// fetch.
func (c *Coordinator) AddStaffAndCode(ctx context.Context, storeCode, staffID string) (StaffResult, error) {
	identity, ok := c.sessions.Identity()
	if !ok {
		return StaffResult{}, types.ErrNoSession
	}
	if identity.Role != types.RoleAdmin {
		return StaffResult{}, types.ErrPermissionDenied
	}

	if identity.IsDemo {
		return c.addStaffLocal(storeCode, staffID, OutcomeLocal, nil)
	}

	provision, err := c.remote.AddStaff(ctx, storeCode, staffID, identity.Credential)
	if err != nil {
		c.log.WithError(err).Warn("remote staff creation failed, provisioning locally")
		return c.addStaffLocal(storeCode, staffID, OutcomeDowngraded, err)
	}

	staff := types.Staff{StaffID: provision.StaffID, Name: provision.StaffID, StoreID: storeCode}
	code := types.AccessCode{
		Code:      provision.AccessCode,
		StaffID:   provision.StaffID,
		StoreCode: storeCode,
		CreatedAt: c.now().UnixMilli(),
	}

	col := c.sessions.Collections()
	if err := c.sessions.SetStaffAndCodes(append(col.Staff, staff), append(col.AccessCodes, code)); err != nil {
		return StaffResult{}, err
	}
	return StaffResult{Staff: staff, Code: code, Outcome: OutcomeSynced}, nil
}

// addStaffLocal provisions a staff+code pair without the backend and mirrors
// the pair into the demo namespace.
func (c *Coordinator) addStaffLocal(storeCode, staffID string, outcome Outcome, cause error) (StaffResult, error) {
	if staffID == "" {
		staffID = fmt.Sprintf("staff_%d", c.now().UnixMilli())
	}

	staff := types.Staff{StaffID: staffID, Name: staffID, StoreID: storeCode}
	code := types.AccessCode{
		Code:      c.newCode(),
		StaffID:   staffID,
		StoreCode: storeCode,
		CreatedAt: c.now().UnixMilli(),
	}

	col := c.sessions.Collections()
	if err := c.sessions.SetStaffAndCodes(append(col.Staff, staff), append(col.AccessCodes, code)); err != nil {
		return StaffResult{}, err
	}
	if err := c.appendDemoPair(staff, code); err != nil {
		return StaffResult{}, err
	}

	result := StaffResult{Staff: staff, Code: code, Outcome: outcome, Cause: cause}
	if cause != nil {
		result.Notice = downgradeNotice("staff created", cause)
	}
	return result, nil
}

// appendDemoPair adds one staff+code pair to the demo namespaces.
func (c *Coordinator) appendDemoPair(staff types.Staff, code types.AccessCode) error {
	demoStaff, err := cache.LoadCollection[types.Staff](c.store, cache.DemoKey(cache.EntityStaff))
	if err != nil {
		return err
	}
	if err := cache.SaveCollection(c.store, cache.DemoKey(cache.EntityStaff), append(demoStaff, staff)); err != nil {
		return err
	}

	demoCodes, err := cache.LoadCollection[types.AccessCode](c.store, cache.DemoKey(cache.EntityCodes))
	if err != nil {
		return err
	}
	return cache.SaveCollection(c.store, cache.DemoKey(cache.EntityCodes), append(demoCodes, code))
}

// DeleteAccessCode revokes an access code and removes the associated staff
// record, in memory and in both cache namespaces, regardless of whether the
// remote deletion succeeded. Admin only; gated on explicit confirmation.
//
// The staff member's previously-added items are retained: orphaned items
// still carry expiry dates worth tracking, and the next successful bulk
// fetch adopts the server's view wholesale anyway.
func (c *Coordinator) DeleteAccessCode(ctx context.Context, code types.AccessCode) (DeleteResult, error) {
	identity, ok := c.sessions.Identity()
	if !ok {
		return DeleteResult{}, types.ErrNoSession
	}
	if identity.Role != types.RoleAdmin {
		return DeleteResult{}, types.ErrPermissionDenied
	}
	if !c.confirm(fmt.Sprintf("Delete staff %s and access code %s?", code.StaffID, code.Code)) {
		return DeleteResult{}, types.ErrConfirmationDeclined
	}

	var remoteErr error
	if !identity.IsDemo {
		remoteErr = c.remote.DeleteAccessCode(ctx, code.Code, identity.Credential)
		if remoteErr != nil {
			c.log.WithError(remoteErr).Warn("remote code deletion failed, removing locally")
		}
	}

	if err := c.removeStaffAndCode(code); err != nil {
		return DeleteResult{}, err
	}

	if identity.IsDemo {
		return DeleteResult{Outcome: OutcomeLocal}, nil
	}
	if remoteErr != nil {
		return DeleteResult{
			Outcome: OutcomeDowngraded,
			Notice:  downgradeNotice("staff removed", remoteErr),
			Cause:   remoteErr,
		}, nil
	}
	return DeleteResult{Outcome: OutcomeSynced}, nil
}

// removeStaffAndCode drops the code and its staff record from the working
// set and from the demo namespaces.
func (c *Coordinator) removeStaffAndCode(code types.AccessCode) error {
	col := c.sessions.Collections()

	codes := make([]types.AccessCode, 0, len(col.AccessCodes))
	for _, existing := range col.AccessCodes {
		if existing.Key() != code.Key() {
			codes = append(codes, existing)
		}
	}
	staff := make([]types.Staff, 0, len(col.Staff))
	for _, s := range col.Staff {
		if s.StaffID != code.StaffID {
			staff = append(staff, s)
		}
	}
	if err := c.sessions.SetStaffAndCodes(staff, codes); err != nil {
		return err
	}

	demoCodes, err := cache.LoadCollection[types.AccessCode](c.store, cache.DemoKey(cache.EntityCodes))
	if err != nil {
		return err
	}
	kept := make([]types.AccessCode, 0, len(demoCodes))
	for _, existing := range demoCodes {
		if existing.Key() != code.Key() {
			kept = append(kept, existing)
		}
	}
	if err := cache.SaveCollection(c.store, cache.DemoKey(cache.EntityCodes), kept); err != nil {
		return err
	}

	demoStaff, err := cache.LoadCollection[types.Staff](c.store, cache.DemoKey(cache.EntityStaff))
	if err != nil {
		return err
	}
	keptStaff := make([]types.Staff, 0, len(demoStaff))
	for _, s := range demoStaff {
		if s.StaffID != code.StaffID {
			keptStaff = append(keptStaff, s)
		}
	}
	return cache.SaveCollection(c.store, cache.DemoKey(cache.EntityStaff), keptStaff)
}

// setItems replaces the item collection through the session manager and, for
// demo sessions, rewrites the demo namespace with the full snapshot.
func (c *Coordinator) setItems(items []types.Item, demoSession bool) error {
	if err := c.sessions.SetItems(items); err != nil {
		return err
	}
	if demoSession {
		return cache.SaveCollection(c.store, cache.DemoKey(cache.EntityItems), items)
	}
	return nil
}

// storeFor picks the store code for a new record: explicit draft value,
// else the session's store, else the default demo store.
func (c *Coordinator) storeFor(draftStore string, identity types.Identity) string {
	if draftStore != "" {
		return draftStore
	}
	if identity.StoreID != "" {
		return identity.StoreID
	}
	return demo.DefaultStore
}

// replaceItem swaps the element with the same identifier; other elements
// keep their positions.
func replaceItem(items []types.Item, item types.Item) []types.Item {
	out := make([]types.Item, len(items))
	for i, existing := range items {
		if existing.ItemID == item.ItemID {
			out[i] = item
		} else {
			out[i] = existing
		}
	}
	return out
}

// dropItem removes the element with the given identifier.
func dropItem(items []types.Item, itemID string) []types.Item {
	out := make([]types.Item, 0, len(items))
	for _, existing := range items {
		if existing.ItemID != itemID {
			out = append(out, existing)
		}
	}
	return out
}

// downgradeNotice builds the user-facing message for a local-only effect.
func downgradeNotice(what string, cause error) string {
	return fmt.Sprintf("%s locally only (%v); the change has not reached the server", what, cause)
}
