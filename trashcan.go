// Package trashcan provides a portable soft-delete primitive: moving a
// file or directory to the operating system's user-visible trash store
// instead of unlinking it permanently.
//
// The supported surface is SoftDelete, Message and the platform's
// Configure; there is no facility here for listing, restoring, or
// emptying the trash.
package trashcan

import "github.com/babarot/trashcan/internal/status"

// Status is the result of a SoftDelete call. Zero is success;
// negative values are stable and documented by Message.
type Status = status.Code

const (
	Ok              = status.Ok
	RealPathFailed  = status.RealPathFailed
	HomeTrashFailed = status.HomeTrashFailed
	HomeStatFailed  = status.HomeStatFailed
	PathStatFailed  = status.PathStatFailed
	MkdirFailed     = status.MkdirFailed
	TopDirFailed    = status.TopDirFailed
	NameFailed      = status.NameFailed
	TimeFailed      = status.TimeFailed
	NameAllocFailed = status.NameAllocFailed
	TrashInfoFailed = status.TrashInfoFailed
	RenameFailed    = status.RenameFailed
	CollisionFailed = status.CollisionFailed
	DirCacheFailed  = status.DirCacheFailed
	BackendFailed   = status.BackendFailed
)

// SoftDelete relocates path to the platform trash store and reports
// the outcome as a Status. On Linux and the BSD family this runs the
// full freedesktop.org trash algorithm (internal/xdgcore); on Windows
// and macOS it delegates to a thin shell-level adapter.
func SoftDelete(path string) Status {
	return softDelete(path)
}

// Message returns a human-readable description of s.
func Message(s Status) string {
	return status.Message(s)
}
