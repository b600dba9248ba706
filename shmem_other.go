// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build !unix

package shmem

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
)

var errUnsupported = errors.Errorf("anonymous shared memory is not supported on %s", runtime.GOOS)

// Create is not supported on this platform and always returns an error.
func Create(name string) (*os.File, error) {
	return nil, errUnsupported
}
