package redis

import "fmt"

// Key construction helpers for color temperature state

// ColortempStateKey returns the key for the latest configuration published
// for a display (hash)
// Pattern: colortemp:state:{display}
func ColortempStateKey(display string) string {
	return fmt.Sprintf("colortemp:state:%s", display)
}

// ColortempMetaKey returns the key for evaluation metadata for a display (hash)
// Pattern: colortemp:meta:{display}
func ColortempMetaKey(display string) string {
	return fmt.Sprintf("colortemp:meta:%s", display)
}
