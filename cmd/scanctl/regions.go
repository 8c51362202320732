package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/scankit/pkg/proc"
)

func init() {
	cmd := newRegionsCmd()
	cmd.Flags().IntVar(&targetPid, "pid", 0, "Target process id")
	cmd.Flags().StringVar(&targetName, "process", "", "Target process name (first match wins)")
	rootCmd.AddCommand(cmd)
}

func newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the mapped memory regions of a process",
		Long: `The regions command enumerates the committed, mapped regions of the target
process's address space, with permissions and backing path where known.

Example:
  scanctl regions --pid 4242
  scanctl regions --process game.exe --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegions()
		},
	}
}

func runRegions() error {
	pid := targetPid
	if pid == 0 && targetName != "" {
		found, err := findProcessByName(targetName)
		if err != nil {
			return err
		}
		pid = found
	}
	if pid == 0 {
		return fmt.Errorf("no target: pass --pid or --process")
	}

	p, err := proc.Attach(pid)
	if err != nil {
		return err
	}
	defer p.Close()

	regions, err := p.Regions()
	if err != nil {
		return err
	}

	if jsonOut {
		type regionOut struct {
			Base  string `json:"base"`
			Size  uint64 `json:"size"`
			Perms string `json:"perms"`
			Path  string `json:"path,omitempty"`
		}
		out := make([]regionOut, 0, len(regions))
		for _, r := range regions {
			out = append(out, regionOut{
				Base:  r.Base.String(),
				Size:  r.Size,
				Perms: permString(r.Readable, r.Writable, r.Executable),
				Path:  r.Path,
			})
		}
		return printJSON(out)
	}

	printInfo("%-18s %-12s %-5s %s\n", "BASE", "SIZE", "PERMS", "PATH")
	for _, r := range regions {
		printInfo("%-18s %-12X %-5s %s\n",
			r.Base, r.Size, permString(r.Readable, r.Writable, r.Executable), r.Path)
	}
	printVerbose("%d regions\n", len(regions))
	return nil
}

func permString(r, w, x bool) string {
	perms := []byte{'-', '-', '-'}
	if r {
		perms[0] = 'r'
	}
	if w {
		perms[1] = 'w'
	}
	if x {
		perms[2] = 'x'
	}
	return string(perms)
}
