// Package sorter exposes drag-and-drop ordering of DAM folders.
//
// It binds the reconcile engine to the host: HostAdapter reads a folder's
// direct children through the search service and writes the explicit sort
// order field of single assets. Service keeps one session per open folder
// and wraps every reconciliation with a snapshot of the persisted order,
// a history record and metrics.
//
// # Host State
//
// The service tracks whether the host is reachable. While offline every
// operation that needs the host first re-pings it and fails with
// ErrOffline if it is still unreachable. Reading an open folder works
// offline.
//
// # HTTP Endpoints
//
//   - GET    /folders                 : open folders and host state.
//   - POST   /folders/open            : {"folder"} opens a folder.
//   - GET    /folders/items?folder=   : current list of an open folder.
//   - POST   /folders/refresh         : {"folder"} refetches, dropping unsaved order.
//   - DELETE /folders?folder=         : closes a folder.
//   - POST   /folders/move            : {"folder","old_index","new_index"} moves and persists.
//   - GET    /folders/plan?folder=    : pending changes, nothing written.
//   - POST   /folders/reconcile       : {"folder"} retries pending writes.
//   - POST   /folders/restore         : {"folder"} restores the newest snapshot.
//   - POST   /folders/status          : {"folder","status"} bulk status update.
//
// Errors are {"error": "..."} with 400 for invalid indexes or statuses, 404
// for folders that are not open, 409 while a reconciliation is in flight,
// 502 when the host fetch fails and 503 while the host is offline.
package sorter
