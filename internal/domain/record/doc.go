// Package record defines the entities held in the companion's offline
// cache: sales orders, quotes and work orders with their line items, plus
// the pull-only customer and stock item reference data.
//
// Every syncable entity embeds SyncMeta, which carries the local identity,
// the server-assigned identity (once pushed) and the per-record sync
// status. Line items have no identity of their own across edits; they are
// owned by their parent and replaced wholesale on every save.
package record
