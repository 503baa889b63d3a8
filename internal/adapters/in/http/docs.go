// Package http is the inbound HTTP adapter of the menu service.
//
// Server implements servers.ServerInterface on top of the application command
// and query handlers. NewRouter wires it into echo together with request
// logging, OpenAPI request validation (kin-openapi), the raw document at
// /openapi.json and the swagger UI at /swagger/index.html.
//
// Domain errors map to status codes:
//
//	errs.ErrObjectAlreadyExists  409
//	errs.ErrObjectNotFound       404
//	errs.ErrValueIsInvalid       400
//	errs.ErrValueIsRequired      400
//	anything else                500
package http
