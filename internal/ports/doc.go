// Package ports defines the interfaces between layers. FormService is
// implemented by the application layer and called by the HTTP handlers.
// CorporationClient and ProfileClient are implemented by the ACL adapter
// and called by the validation and submission pipelines.
package ports
