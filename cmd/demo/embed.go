package main

import "embed"

// configFS carries the stock configs so the demo runs from any directory
//
//go:embed configs
var configFS embed.FS
