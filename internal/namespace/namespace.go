// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build unix

// Package namespace implements shared memory objects, which are created by name
// and then immediately removed from the name table, leaving only the open descriptor.
package namespace

import (
	"os"

	"golang.org/x/sys/unix"
)

const (
	// CreateFlags are used to create a new object. The object must not exist.
	CreateFlags = unix.O_CREAT | unix.O_RDWR | unix.O_EXCL | unix.O_CLOEXEC
	// OwnerOnly restricts access to the object to its owner.
	OwnerOnly = 0600
)

// Namespace is a flat table of named shared memory objects.
// Both methods report failures as *os.SyscallError.
type Namespace interface {
	// Open opens or creates an object. flag is a combination of unix.O_* flags.
	Open(name string, flag int, perm uint32) (*os.File, error)
	// Unlink removes the name. The object lives until all its descriptors are closed.
	Unlink(name string) error
}

// CreateUnlinked creates a new object in ns and unlinks its name right away.
// If the name can't be unlinked, the object is closed and the error is returned,
// so a returned file is never reachable via ns.
func CreateUnlinked(ns Namespace, name string) (*os.File, error) {
	file, err := ns.Open(name, CreateFlags, OwnerOnly)
	if err != nil {
		return nil, err
	}
	if err = ns.Unlink(name); err != nil {
		file.Close()
		return nil, err
	}
	return file, nil
}
