// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build unix

package shmem

import (
	"os"

	"github.com/nxgtw/go-shmem/internal/common"
)

// Create returns a new empty shared memory file.
// The file is opened for reading and writing and has the close-on-exec flag set.
//	name - object name. It must not contain zero bytes. Conventionally, it begins
//	with '/' and contains no other slashes. On some systems it is used only as a label.
// All errors are of type *os.SyscallError.
// The caller owns the file and must close it.
func Create(name string) (*os.File, error) {
	if err := common.CheckName(createOp, name); err != nil {
		return nil, err
	}
	return create(name)
}
