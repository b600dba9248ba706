// Copyright 2016 Aleksandr Demakin. All rights reserved.

package namespace

// Default returns the namespace used by solaris and illumos libc.
func Default() Namespace {
	return Dir{Path: "/tmp", Prefix: ".SHMD"}
}
