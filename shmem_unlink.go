// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build unix && !linux && !android && !freebsd

package shmem

import (
	"os"

	"github.com/nxgtw/go-shmem/internal/namespace"
)

const createOp = "shm_open"

// objects are created in the system namespace and unlinked immediately.
// if unlinking fails, Create fails too, even though the object stays in the namespace.
func create(name string) (*os.File, error) {
	return namespace.CreateUnlinked(namespace.Default(), name)
}
