// Package combin enumerates K-element index combinations in lexicographic order.
package combin
