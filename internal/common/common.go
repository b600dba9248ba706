// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build unix

package common

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// NewFile turns the result of a descriptor-returning call into an owned file.
// If err is set, or fd is the failure sentinel, no file is created and
// an *os.SyscallError for op is returned.
//	op - the name of the system call, which produced fd.
//	name - file name for informational purposes only.
func NewFile(op string, fd int, err error, name string) (*os.File, error) {
	if err != nil {
		return nil, os.NewSyscallError(op, err)
	}
	if fd < 0 {
		return nil, os.NewSyscallError(op, unix.EBADF)
	}
	return os.NewFile(uintptr(fd), name), nil
}

// CheckName returns EINVAL for names, which cannot be passed to the os as C strings.
func CheckName(op, name string) error {
	if _, err := unix.BytePtrFromString(name); err != nil {
		return os.NewSyscallError(op, err)
	}
	return nil
}

// SyscallErrHasCode returns true, if the given error is a syscall error with the given code.
func SyscallErrHasCode(err error, code syscall.Errno) bool {
	if sysErr, ok := err.(*os.SyscallError); ok {
		if errno, ok := sysErr.Err.(syscall.Errno); ok {
			return errno == code
		}
	}
	return false
}
