package model

import (
	"fmt"

	"github.com/elastic/go-sysinfo"
)

// TotalMemory returns the host's physical RAM in bytes.
func TotalMemory() (uint64, error) {
	host, err := sysinfo.Host()
	if err != nil {
		return 0, fmt.Errorf("host info: %w", err)
	}
	mem, err := host.Memory()
	if err != nil {
		return 0, fmt.Errorf("host memory: %w", err)
	}
	return mem.Total, nil
}

// FitsInMemory reports whether a model of size bytes can be held in total
// bytes of RAM. Unknown RAM (0) is treated as sufficient.
func FitsInMemory(size, total uint64) bool {
	if total == 0 {
		return true
	}
	return size < total
}
