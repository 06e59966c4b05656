// File: check.go
// Title: Check Command
// Description: Parses one or more definition files, renders every
//              diagnostic in caret style and summarizes the result per
//              file. Exits non-zero when any file has errors.
// Version: v0.1.0
// Created: 2026-08-25

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	lgslog "github.com/YunfeiZhai703/logic-gate-simulator-2/core/log"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/diag"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Parse definition files and report every error",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	rt, err := initRuntime()
	if err != nil {
		return err
	}

	engine := netdef.New(netdef.Options{
		Logger:                 rt.logger,
		MaxStatementIterations: rt.cfg.Parser.MaxStatementIterations,
	})

	failed := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		result := engine.Build(string(data))
		rt.logger.Debug("checked file", lgslog.Fields{
			"file":    path,
			"pass_id": result.PassID,
			"ok":      result.OK,
		})

		printResult(rt, path, result)
		if !result.OK {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) contain errors", failed, len(args))
	}
	return nil
}

func printResult(rt *runtime, path string, result *netdef.Result) {
	for _, d := range result.Diagnostics {
		fmt.Print(renderDiagnostic(d, rt.colorEnabled()))
		fmt.Println()
	}

	if result.OK {
		summary := fmt.Sprintf("%s: OK (%d devices, %d connections)",
			path, result.Devices, result.Connections)
		if rt.colorEnabled() {
			summary = okStyle.Render(summary)
		}
		fmt.Println(summary)
		return
	}

	summary := fmt.Sprintf("%s: %d error(s)", path, len(result.Diagnostics))
	if rt.colorEnabled() {
		summary = failStyle.Render(summary)
	}
	fmt.Println(summary)
}

// renderDiagnostic renders one diagnostic in the caret style, optionally
// colored. The plain rendering matches diag.Diagnostic.String.
func renderDiagnostic(d diag.Diagnostic, color bool) string {
	if !color {
		return d.String()
	}

	var b strings.Builder
	b.WriteString(errorHeadStyle.Render(fmt.Sprintf("Error - %s:", d.Code)))
	b.WriteString(" " + d.Message + "\n")
	b.WriteString(positionStyle.Render(fmt.Sprintf("Line %d Char %d:", d.Line, d.Column)))
	b.WriteString("\n")
	b.WriteString(d.LineText)
	b.WriteString("\n")
	if d.Column > 0 {
		b.WriteString(strings.Repeat(" ", d.Column-1))
	}
	b.WriteString(caretStyle.Render("^"))
	b.WriteString("\n")
	b.WriteString(descriptionStyle.Render("Description: " + d.Code.Description()))
	b.WriteString("\n")
	return b.String()
}
