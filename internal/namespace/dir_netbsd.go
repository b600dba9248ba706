// Copyright 2016 Aleksandr Demakin. All rights reserved.

package namespace

import (
	"os"

	"golang.org/x/sys/unix"
)

const shmDir = "/var/shm"

// tmpfsDir refuses to create objects, if its directory is not a mounted tmpfs.
type tmpfsDir struct {
	Dir
}

// Default returns the namespace used by netbsd libc.
// Like libc, it fails with ENOTSUP, if /var/shm is not a tmpfs.
func Default() Namespace {
	return tmpfsDir{Dir{Path: shmDir, Prefix: ".shmobj_"}}
}

func (d tmpfsDir) Open(name string, flag int, perm uint32) (*os.File, error) {
	var statvfs unix.Statvfs_t
	if err := unix.Statvfs(d.Path, &statvfs); err != nil {
		return nil, os.NewSyscallError("shm_open", err)
	}
	if err := checkShmFs(&statvfs); err != nil {
		return nil, err
	}
	return d.Dir.Open(name, flag, perm)
}

// lib/librt/shm.c
func checkShmFs(statvfs *unix.Statvfs_t) error {
	if unix.ByteSliceToString(statvfs.Fstypename[:]) != "tmpfs" {
		return os.NewSyscallError("shm_open", unix.ENOTSUP)
	}
	return nil
}
