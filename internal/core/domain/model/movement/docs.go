// Package movement is the append-only audit log of stock changing place.
package movement
