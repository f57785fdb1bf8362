package clientdist

import _ "embed"

// DropkitJS is the thin client bundle.
//
// The live handler serves it at "<prefix>/client.js".
//go:embed dropkit.js
var DropkitJS []byte
