// Copyright 2016 Aleksandr Demakin. All rights reserved.

package namespace

import (
	"os"
	"syscall"
	"unsafe"

	"github.com/nxgtw/go-shmem/internal/common"

	"golang.org/x/sys/unix"
)

// Kernel is the posix shared memory namespace of the kernel.
// Names are limited to PSHMNAMLEN (31) bytes.
type Kernel struct{}

var _ Namespace = Kernel{}

// Default returns the kernel namespace.
func Default() Namespace {
	return Kernel{}
}

// Open calls shm_open.
func (Kernel) Open(name string, flag int, perm uint32) (*os.File, error) {
	fd, err := shm_open(name, flag, perm)
	return common.NewFile("shm_open", fd, err, "shm:"+name)
}

// Unlink calls shm_unlink.
func (Kernel) Unlink(name string) error {
	if err := shm_unlink(name); err != nil {
		return os.NewSyscallError("shm_unlink", err)
	}
	return nil
}

// syscalls

func shm_open(name string, flags int, mode uint32) (int, error) {
	nameBytes, err := unix.BytePtrFromString(name)
	if err != nil {
		return -1, err
	}
	fd, _, errno := unix.Syscall(unix.SYS_SHM_OPEN, uintptr(unsafe.Pointer(nameBytes)), uintptr(flags), uintptr(mode))
	if errno != syscall.Errno(0) {
		return -1, errno
	}
	return int(fd), nil
}

func shm_unlink(name string) error {
	nameBytes, err := unix.BytePtrFromString(name)
	if err != nil {
		return err
	}
	_, _, errno := unix.Syscall(unix.SYS_SHM_UNLINK, uintptr(unsafe.Pointer(nameBytes)), 0, 0)
	if errno != syscall.Errno(0) {
		return errno
	}
	return nil
}
