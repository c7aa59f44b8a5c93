//go:build !unix

package fileutil

const openNoFollow = 0

func isSymlinkLoop(error) bool { return false }
