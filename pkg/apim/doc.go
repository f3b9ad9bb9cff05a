// Package apim models the resources exposed by an API management service.
//
// The tree is three levels deep:
//
//	API
//	└── EndpointGroup
//	    └── Endpoint (name, target, backup flag)
//
// An API is backed by the full definition document exported by the service.
// Groups and endpoints are views onto nodes of that document, so flipping an
// endpoint's backup flag edits the document that is later sent back on
// import. Fields this package does not know about are preserved verbatim.
package apim
