package main

import (
	"fmt"
	"os"
)

//	@title			nailsite API
//	@version		1.0
//	@description	Layout plans for salon sites.
//	@BasePath		/api

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
