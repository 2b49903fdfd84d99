// Package seed holds the built-in client list used by the in-memory store.
package seed

import _ "embed"

// Clients is the built-in client list as a JSON array
//
//go:embed clients.json
var Clients []byte
