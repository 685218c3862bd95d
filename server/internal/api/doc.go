// Package api implements the HTTP REST API for fittracker-server.
//
// New(opts) returns an http.Handler that serves:
//
//	POST /api/v1/summary        compute one workout summary from {"type","data"}
//	GET  /api/v1/workout-types  registered type codes with their parameter order
//	GET  /api/v1/health         liveness, {"status":"ok"}
//
// All endpoints respond with Content-Type: application/json and return 405 for
// unsupported methods. A malformed request body is answered with 400; a body
// that parses but is rejected by the calculator is answered with 422 and an
// error code (see errorCode).
//
// Every successful summary is handed to the optional Publisher (the WebSocket
// hub) and counted by the optional Recorder (Prometheus metrics).
//
// JSON types are defined in types.go. No external HTTP framework is used.
package api
