// Copyright 2016 Aleksandr Demakin. All rights reserved.

package namespace

// Default returns a directory namespace in /tmp.
// aix keeps posix shm objects in the kernel, but x/sys gives no way to reach
// that shm_open, so objects are emulated with files.
func Default() Namespace {
	return Dir{Path: "/tmp"}
}
