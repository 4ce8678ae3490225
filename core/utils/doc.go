// Package utils provides common utility functions for the registry API.
// It includes helper functions for type conversion of loosely typed JSON
// payload fields and other shared logic that doesn't fit into
// domain-specific packages.
package utils
