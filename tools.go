//go:build tools
// +build tools

package geokernel

import (
	_ "github.com/dmarkham/enumer"
)
