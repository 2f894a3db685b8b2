// Package middleware groups the Fiber middleware shared by every route.
//
// # Components
//
//   - auth: API key check (X-API-Key or bearer token). Disabled when no key
//     is configured; selected path prefixes such as /swagger can skip it.
//   - rayid: assigns a RayID to every request, reusing an incoming X-Ray-ID
//     when it is a valid UUID, and echoes it in the response headers.
//
// Register rayid first so every log line, including auth rejections, carries the RayID.
package middleware
