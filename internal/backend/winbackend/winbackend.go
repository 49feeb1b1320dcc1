//go:build windows

// Package winbackend is the Windows trash adapter. Unlike the XDG
// core, it implements nothing of the freedesktop protocol: it hands
// the path to the shell's SHFileOperationW move-to-recycle-bin routine
// and reports ok or error, per the "opaque collaborator"
// contract the core specification assigns to non-XDG platforms.
package winbackend

import (
	"path/filepath"
	"syscall"
	"unsafe"

	"github.com/babarot/trashcan/internal/status"
)

var (
	shell32              = syscall.NewLazyDLL("shell32.dll")
	procSHFileOperationW = shell32.NewProc("SHFileOperationW")
)

const (
	foDelete          = 0x3
	fofAllowUndo      = 0x40
	fofNoConfirmation = 0x10
	fofSilent         = 0x4
	fofNoErrorUI      = 0x400
)

// shFileOpStructW mirrors SHFILEOPSTRUCTW on 64-bit Windows, including
// the compiler padding msdn's layout implies between the handle/flags
// fields and the pointer fields.
type shFileOpStructW struct {
	Hwnd                  uintptr
	WFunc                 uint32
	_                     [4]byte
	PFrom                 *uint16
	PTo                   *uint16
	FFlags                uint16
	_                     [2]byte
	FAnyOperationsAborted int32
	HNameMappings         uintptr
	LpszProgressTitle     *uint16
}

// Trash moves path to the Windows Recycle Bin via SHFileOperationW,
// the same shell API Windows Explorer's own delete-to-recycle-bin uses.
// It returns status.Ok or status.BackendFailed; it never returns any
// of the XDG-specific codes, since none of that machinery applies
// here.
func Trash(path string) status.Code {
	abs, err := filepath.Abs(path)
	if err != nil {
		return status.BackendFailed
	}

	pathUTF16, err := syscall.UTF16FromString(abs)
	if err != nil {
		return status.BackendFailed
	}
	// SHFileOperationW requires the PFrom buffer to be double-NUL
	// terminated; UTF16FromString already appended one NUL.
	pathUTF16 = append(pathUTF16, 0)

	op := shFileOpStructW{
		WFunc:  foDelete,
		PFrom:  &pathUTF16[0],
		FFlags: fofAllowUndo | fofNoConfirmation | fofSilent | fofNoErrorUI,
	}

	ret, _, _ := procSHFileOperationW.Call(uintptr(unsafe.Pointer(&op)))
	if ret != 0 {
		return status.BackendFailed
	}
	return status.Ok
}
