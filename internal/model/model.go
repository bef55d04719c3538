package model

// Package model contains the response records returned by the HTTP handlers.
// They carry no behavior and no database tags.

// User is built per request from the /a/:name path segment.
type User struct {
	Name string `json:"name" example:"Dom"`
}

// AppInfo describes the running application for the /status endpoint.
type AppInfo struct {
	Name    string `json:"name" example:"Hello Actix App"`
	Version string `json:"version" example:"1.0.0"`
}
