// Package history records every position write the sorter sends to the host.
//
// Each reconciliation produces one Event per changed item with the old and new
// position, the outcome and the request's RayID. The log answers "who moved
// what, and did it stick" after the fact, and is the place to look when the
// persisted order drifts from what an operator saw on screen.
//
// History is optional. Without a database the Repository silently drops
// records and the feature does not register its routes.
//
// # HTTP Endpoints
//
//   - GET /history?folder=/Demo&limit=50 : newest events first.
package history
