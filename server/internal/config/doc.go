// Package config loads the server configuration file (server.yaml).
//
// Config fields:
//   - Server.HTTPPort          port for the REST API, metrics and stream (default 8080)
//   - Server.MaxBodyBytes      request body limit for POST endpoints (default 64 KiB)
//   - Server.Auth.Mode         "apikey" or "none"
//   - Server.Auth.KeyEnv       environment variable holding the expected API key
//   - Server.Auth.Header       HTTP header carrying the key (default "X-API-Key")
//   - Server.Stream.Enabled    mount the WebSocket stream at /ws/stream (default true)
//   - Server.Stream.SendBuffer per-client outgoing buffer depth (default 16)
//   - Log.Level                debug | info | warn | error (default info)
//
// Load(path) applies defaults before unmarshalling, then validates.
// Defaults() returns the same defaults for running without a file.
package config
