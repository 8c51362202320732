package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/scankit/pkg/namepool"
)

var resolvePool string

func init() {
	cmd := newResolveCmd()
	addTargetFlags(cmd)
	cmd.Flags().StringVar(&resolvePool, "pool", "", "Name pool base address")
	rootCmd.AddCommand(cmd)
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <id>...",
		Short: "Resolve name-pool identifiers to strings",
		Long: `The resolve command looks up one or more 32-bit identifiers in the
target's name pool and prints the interned strings.

Example:
  scanctl resolve --pid 4242 --pool 0x14A000000 1205 0x4B1
  scanctl resolve --dump names.bin --dump-base 0x14A000000 --pool 0x14A000000 7`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(args)
		},
	}
}

func runResolve(args []string) error {
	if resolvePool == "" {
		return fmt.Errorf("--pool is required")
	}
	poolBase, err := parseAddr(resolvePool)
	if err != nil {
		return fmt.Errorf("invalid --pool: %w", err)
	}

	mem, closeMem, err := openMemory()
	if err != nil {
		return err
	}
	defer closeMem()

	pool := namepool.New(mem, poolBase)

	type entry struct {
		ID   uint32 `json:"id"`
		Name string `json:"name,omitempty"`
		OK   bool   `json:"resolved"`
	}
	var out []entry

	for _, arg := range args {
		raw, err := parseAddr(arg)
		if err != nil || raw > 0xFFFFFFFF {
			return fmt.Errorf("invalid identifier %q", arg)
		}
		id := uint32(raw)
		name, ok := pool.Lookup(id)
		out = append(out, entry{ID: id, Name: name, OK: ok})
	}

	if jsonOut {
		return printJSON(out)
	}
	for _, e := range out {
		if e.OK {
			printInfo("%d\t%s\n", e.ID, e.Name)
		} else {
			printInfo("%d\t<unresolved>\n", e.ID)
		}
	}
	return nil
}
