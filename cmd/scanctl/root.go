package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
	"github.com/spf13/cobra"

	"github.com/joshuapare/scankit/pkg/proc"
	"github.com/joshuapare/scankit/pkg/snapshot"
	"github.com/joshuapare/scankit/pkg/types"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool

	// Target selection, shared by every command that needs a memory source
	targetPid  int
	targetName string
	dumpPath   string
	dumpBase   string
)

var rootCmd = &cobra.Command{
	Use:   "scanctl",
	Short: "Scan live process memory for known values and names",
	Long: `scanctl locates known values inside the memory of a running process or a
saved memory dump: exact numeric constants, numeric ranges, and interned
name identifiers resolved through an engine name pool. It is meant for
resolving runtime offsets when reverse-engineering game engines.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// addTargetFlags registers the memory-source flags on a command.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&targetPid, "pid", 0, "Target process id")
	cmd.Flags().StringVar(&targetName, "process", "", "Target process name (first match wins)")
	cmd.Flags().StringVar(&dumpPath, "dump", "", "Scan a saved memory dump instead of a live process")
	cmd.Flags().StringVar(&dumpBase, "dump-base", "0", "Address the dump was captured at")
}

// openMemory resolves the target flags into a memory source. The returned
// close function is always non-nil.
func openMemory() (types.Memory, func() error, error) {
	if dumpPath != "" {
		base, err := parseAddr(dumpBase)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --dump-base: %w", err)
		}
		snap, err := snapshot.Open(dumpPath, base)
		if err != nil {
			return nil, nil, err
		}
		printVerbose("Mapped dump %s at %s (%d bytes)\n", dumpPath, base, snap.Region().Size)
		return snap, snap.Close, nil
	}

	pid := targetPid
	if pid == 0 && targetName != "" {
		found, err := findProcessByName(targetName)
		if err != nil {
			return nil, nil, err
		}
		pid = found
		printVerbose("Resolved process %q to pid %d\n", targetName, pid)
	}
	if pid == 0 {
		return nil, nil, fmt.Errorf("no target: pass --pid, --process or --dump")
	}

	p, err := proc.Attach(pid)
	if err != nil {
		return nil, nil, err
	}
	return p, p.Close, nil
}

// findProcessByName returns the pid of the first process whose name matches
// name, case-insensitively.
func findProcessByName(name string) (int, error) {
	procs, err := process.Processes()
	if err != nil {
		return 0, fmt.Errorf("enumerate processes: %w", err)
	}
	want := strings.ToLower(name)
	for _, p := range procs {
		n, err := p.Name()
		if err != nil {
			continue
		}
		if strings.ToLower(n) == want {
			return int(p.Pid), nil
		}
	}
	return 0, fmt.Errorf("no process named %q", name)
}

// parseAddr accepts hex (with or without 0x) and decimal addresses.
func parseAddr(s string) (types.Address, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		v, err := strconv.ParseUint(rest, 16, 64)
		return types.Address(v), err
	}
	if rest, ok := strings.CutPrefix(s, "0X"); ok {
		v, err := strconv.ParseUint(rest, 16, 64)
		return types.Address(v), err
	}
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return types.Address(v), nil
	}
	v, err := strconv.ParseUint(s, 16, 64)
	return types.Address(v), err
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
