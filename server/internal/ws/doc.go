// Package ws implements the WebSocket live stream for fittracker-server.
//
// Hub manages a set of connected clients and pushes every summary computed by
// the API to all of them. It satisfies api.Publisher.
//
// New(sendBuffer, gauge) creates a Hub. gauge may be nil; when set it is told
// the client count after every change.
// Hub.Run(ctx) blocks until ctx is cancelled, then closes all active
// connections and refuses new ones.
// Hub.ServeHTTP upgrades an HTTP connection to WebSocket, replays the most
// recent summary (if any) on connect, then streams each new one.
//
// Message format sent to clients:
//
//	{
//	  "event": "summary",
//	  "data":  { /* same schema as the POST /api/v1/summary response */ }
//	}
//
// A client whose send buffer is full is disconnected rather than slowing the
// API down. The upgrader accepts all origins. Apply CORS restrictions at the
// reverse proxy level. The server mounts the hub at /ws/stream behind the same
// API key middleware as /api/.
package ws
