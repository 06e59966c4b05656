// File: tokens.go
// Title: Tokens Command
// Description: Dumps the token stream of a definition file, one token per
//              line with its position. Mainly useful when debugging why a
//              definition does not parse the way it reads.
// Version: v0.1.0
// Created: 2026-08-25

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/diag"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/names"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/parser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream of a definition file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	rt, err := initRuntime()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	table := names.NewTable()
	diags := diag.NewList()
	scanner := parser.NewScanner(string(data), table, diags)

	for _, tok := range scanner.ScanAll() {
		fmt.Printf("%4d:%-3d %s\n", tok.Line, tok.Column, tok.String())
	}

	for _, d := range diags.All() {
		fmt.Print(renderDiagnostic(d, rt.colorEnabled()))
		fmt.Println()
	}
	if !diags.Empty() {
		return fmt.Errorf("%d scan error(s)", diags.Len())
	}
	return nil
}
