// Copyright 2016 Aleksandr Demakin. All rights reserved.

package shmem

import (
	"os"
	"syscall"

	"github.com/nxgtw/go-shmem/internal/common"
	"github.com/nxgtw/go-shmem/internal/namespace"

	"golang.org/x/sys/unix"
)

const (
	createOp = "shm_open"
	// SHM_ANON from sys/mman.h: ((char *)1)
	shmAnon = uintptr(1)
)

// name is not used, anonymous objects have no name.
func create(name string) (*os.File, error) {
	fd, err := shm_open_anon(namespace.CreateFlags, namespace.OwnerOnly)
	return common.NewFile(createOp, fd, err, "shm:"+name)
}

// syscalls

func shm_open_anon(flags int, mode uint32) (int, error) {
	fd, _, errno := unix.Syscall(unix.SYS_SHM_OPEN, shmAnon, uintptr(flags), uintptr(mode))
	if errno != syscall.Errno(0) {
		return -1, errno
	}
	return int(fd), nil
}
