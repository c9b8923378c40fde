// Package types defines the inventory entities, the session identity, the
// client configuration, and the standard errors shared by every component of
// the expirytrack client.
//
// All JSON tags match the wire format of the backend service and the shape
// persisted in the local cache, so a value round-trips unchanged between the
// remote gateway, memory, and the cache store.
package types
