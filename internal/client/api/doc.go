// Package api implements the HTTP client for the remote catalog/employee
// service. Every endpoint answers with a JSON envelope {status, data,
// message}; mutating requests are multipart/form-data and simulate
// PUT/DELETE through a _method override field sent over POST.
package api
