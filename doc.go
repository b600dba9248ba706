// Copyright 2016 Aleksandr Demakin. All rights reserved.

// Package shmem creates anonymous shared memory files.
// A file returned by Create is empty, opened for reading and writing and is not
// reachable by any name, so it can only be shared by passing the descriptor
// to another process: via fork/exec inheritance, dup, or a unix socket.
// Sizing and mapping the file is left to the caller.
//
// The implementation depends on the os:
//	linux, android - memfd_create.
//	freebsd - shm_open with SHM_ANON.
//	other unix systems - shm_open followed by shm_unlink.
package shmem
