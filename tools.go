//go:build tools

package main

import (
	_ "github.com/gostaticanalysis/nilerr"
	_ "github.com/timakin/bodyclose/passes/bodyclose"
	_ "golang.org/x/tools/cmd/goimports"
	_ "honnef.co/go/tools/cmd/staticcheck"
)
