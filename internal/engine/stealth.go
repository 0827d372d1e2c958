package engine

import (
	stealth "github.com/anatolykoptev/go-stealth"
)

// Re-export stealth types for engine consumers.
type BrowserClient = stealth.BrowserClient
