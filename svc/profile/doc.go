// Package profile is a small profile service built from bounded text fields.
//
// A Profile carries a handle, a display name and a bio, each a
// bounded.Field with its own limits type, so a Profile value always holds
// text of acceptable length. Values enter the service only through the
// request binders (which decode through bounded.New) or through the store
// (which scans through bounded.Field.Scan), so out-of-range text is rejected
// at the edge and never reaches storage.
//
// Routes:
//
//	POST /profiles       create from JSON or form data
//	GET  /profiles       list, optionally filtered by ?handle=
//	GET  /profiles/{id}  fetch one profile
//
// Length violations answer 422 with the offending fields; malformed input
// answers 400.
package profile
