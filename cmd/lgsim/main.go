// File: main.go
// Title: lgsim Entry Point
// Description: Command-line front end for the logic-gate definition
//              language: checks definition files, dumps token streams and
//              reports version information.
// Version: v0.1.0
// Created: 2026-08-25

package main

import (
	"os"

	"github.com/YunfeiZhai703/logic-gate-simulator-2/cmd/lgsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
