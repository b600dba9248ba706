// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build unix

package namespace

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/nxgtw/go-shmem/internal/common"

	"golang.org/x/sys/unix"
)

const maxNameLen = 255

// Dir is a namespace backed by a directory, the way libc implements shm_open
// on systems, which do not have it as a system call.
type Dir struct {
	// Path is the directory, where objects are placed.
	Path string
	// Prefix is prepended to every file name.
	Prefix string
	// Hash replaces names with their sha256 digest followed by '.shm'.
	Hash bool
}

var _ Namespace = Dir{}

// Open opens a file for the object. Symlinks are not followed.
func (d Dir) Open(name string, flag int, perm uint32) (*os.File, error) {
	path, err := d.path("shm_open", name)
	if err != nil {
		return nil, err
	}
	fd, err := unix.Open(path, flag|unix.O_NOFOLLOW|unix.O_CLOEXEC, perm)
	return common.NewFile("shm_open", fd, err, "shm:"+name)
}

// Unlink removes object's file.
func (d Dir) Unlink(name string) error {
	path, err := d.path("shm_unlink", name)
	if err != nil {
		return err
	}
	if err = unix.Unlink(path); err != nil {
		return os.NewSyscallError("shm_unlink", err)
	}
	return nil
}

// path maps an object name onto a file in the directory.
// A single leading '/' is allowed, all other slashes are not.
func (d Dir) path(op, name string) (string, error) {
	if err := common.CheckName(op, name); err != nil {
		return "", err
	}
	name = strings.TrimPrefix(name, "/")
	if len(name) == 0 || strings.Contains(name, "/") {
		return "", os.NewSyscallError(op, unix.EINVAL)
	}
	if len(name) >= maxNameLen {
		return "", os.NewSyscallError(op, unix.ENAMETOOLONG)
	}
	if d.Hash {
		sum := sha256.Sum256([]byte("/" + name))
		name = hex.EncodeToString(sum[:]) + ".shm"
	}
	return filepath.Join(d.Path, d.Prefix+name), nil
}
