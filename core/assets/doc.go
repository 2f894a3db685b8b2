// Package assets is the client for the DAM host's REST services.
//
// The sorter only needs a handful of calls: searching a folder, writing a
// single asset's metadata, bulk-writing metadata for a query, and a
// reachability check used at startup to decide between online and degraded
// mode.
//
// # Transport
//
// Requests are form-encoded POSTs to /services/*. The transport is a
// go-retryablehttp client: connection errors, 429 and 5xx responses are
// retried with exponential backoff. Non-2xx responses surface as *APIError.
//
// # Authentication
//
// A configured AuthToken is sent as a bearer token. Otherwise, when a
// Username is configured, the client logs in through /services/apilogin on
// first use and again whenever the host answers 401.
//
// # Usage
//
//	client, err := assets.NewClient(cfg.Host, logger)
//	page, err := client.Search(ctx, assets.SearchRequest{
//	    Query: assets.FolderQuery("/Demo/Campaign"),
//	    Sort:  "explicitSortOrder,name",
//	})
package assets
