// Package utils collects various services: configuration, logging, compression, etc.
package utils

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// PathIsReadable verifies that file or directory exists and could be read
func PathIsReadable(filename string) error {
	fileStat, err := os.Stat(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("'%s' doesn't exist", filename)
		}
		return fmt.Errorf("error checking '%s': %s", filename, err)
	}

	if fileStat.Mode().Perm()&0444 == 0 || unix.Access(filename, unix.R_OK) != nil {
		return fmt.Errorf("'%s' is inaccessible, check access rights", filename)
	}
	return nil
}
