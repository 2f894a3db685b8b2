// Package server describes how the HTTP API is exposed.
//
// The sorter panel is embedded by the DAM host application, so CORS is
// limited to the origins in SERVER_ALLOWED_ORIGINS (comma separated).
// Origins normalizes that list; when it is empty no CORS middleware is
// installed. An empty ApiKey disables the auth middleware.
package server
