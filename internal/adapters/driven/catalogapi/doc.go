// Package catalogapi implements driven.CatalogAPI over the catalog HTTP server.
//
// Routes:
//
//	GET    /categories/{id}
//	GET    /services/{categoryID}
//	POST   /services
//	PUT    /services/{id}
//	DELETE /services/{id}
//	GET    /uploads/{filename}
//
// Responses are decoded leniently: identifiers and numbers may arrive as
// JSON numbers or strings. Non-2xx responses become *StatusError.
package catalogapi
