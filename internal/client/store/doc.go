// Package store is the data-synchronization layer of the console. It
// owns in-memory mirrors of the server collections for the active
// session, reconciles CRUD operations against the remote service, and
// reports outcomes through the toast center.
//
// Contract:
//   - list operations fully replace their mirror; they report failures
//     but do not re-raise them, leaving the mirror at its prior value.
//   - mutations report and re-raise, so forms can stay open on failure;
//     a settled mutation is followed by a full refetch.
//   - mirror writes are tagged with the session generation at issue
//     time; responses that settle under a different generation are
//     dropped instead of resurrecting stale data after logout.
package store
