// Package runlock enforces single-writer access to an output tree using an
// advisory file lock.
package runlock
