//go:build !unix

package main

import (
	"errors"
	"syscall"
)

func raise(syscall.Signal) error {
	return errors.New("raise is only supported on unix")
}
