// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build linux || android

package shmem

import (
	"os"

	"github.com/nxgtw/go-shmem/internal/common"

	"golang.org/x/sys/unix"
)

const createOp = "memfd_create"

// the name is visible only in /proc/<pid>/fd.
func create(name string) (*os.File, error) {
	fd, err := unix.MemfdCreate(name, unix.MFD_CLOEXEC)
	return common.NewFile(createOp, fd, err, "memfd:"+name)
}
