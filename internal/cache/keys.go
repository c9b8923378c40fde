package cache

// Entity names used to derive cache keys.
const (
	EntityItems = "items"
	EntityStaff = "staff"
	EntityCodes = "codes"
)

// KeySession holds the persisted session identity.
const KeySession = "session"

// DurableKey returns the key of the durable namespace for an entity type:
// the last snapshot the remote returned, or whatever local fallback
// mutations have accumulated.
func DurableKey(entity string) string { return entity + "_cache" }

// DemoKey returns the key of the demo namespace for an entity type: effects
// created while the session was demo-flagged, kept apart so a later real
// login does not contaminate authoritative data.
func DemoKey(entity string) string { return "demo_" + entity }
