// Package utils provides common utility functions for the competency matrix.
// It includes order-preserving string-set operations shared by the comparison
// and query layers.
package utils
