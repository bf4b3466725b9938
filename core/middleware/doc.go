// Package middleware groups the Fiber middleware of the matcher API.
//
// # Components
//
//   - auth: rejects requests whose X-API-Key header (or api_key query parameter) does not
//     match server.api_key. An empty key disables the check.
//   - rayid: tags each request with an X-Ray-ID. An incoming X-Ray-ID is kept, otherwise a UUID
//     is generated. The id is echoed in the response and stored in the request locals for
//     logger.WithRayID.
//
// rayid is registered first in cmd/start.go so the request log and auth failures carry the id.
package middleware
