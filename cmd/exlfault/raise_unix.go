//go:build unix

package main

import "syscall"

func raise(sig syscall.Signal) error {
	return syscall.Kill(syscall.Getpid(), sig)
}
