package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/scankit/pkg/namepool"
	"github.com/joshuapare/scankit/pkg/scan"
	"github.com/joshuapare/scankit/pkg/types"
)

var (
	scanAddr  string
	scanSize  uint64
	scanValue string
	scanMin   string
	scanMax   string
	scanName  string
	scanFull  bool
	scanWidth int
	scanPool  string
)

func init() {
	cmd := newScanCmd()
	addTargetFlags(cmd)
	cmd.Flags().StringVar(&scanAddr, "addr", "", "Base address of the region to scan")
	cmd.Flags().Uint64Var(&scanSize, "size", 0, "Region size in bytes")
	cmd.Flags().StringVar(&scanValue, "value", "", "Exact numeric value to find")
	cmd.Flags().StringVar(&scanMin, "min", "", "Lower bound of a numeric range")
	cmd.Flags().StringVar(&scanMax, "max", "", "Upper bound of a numeric range")
	cmd.Flags().StringVar(&scanName, "name", "", "Interned name to find via the name pool")
	cmd.Flags().BoolVar(&scanFull, "full", false, "Require exact name equality instead of substring match")
	cmd.Flags().IntVar(&scanWidth, "width", 4, "Numeric element width: 2, 4 or 8")
	cmd.Flags().StringVar(&scanPool, "pool", "", "Name pool base address (required with --name)")
	rootCmd.AddCommand(cmd)
}

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Find the first occurrence of a value inside a memory region",
		Long: `The scan command walks a region of the target's memory in fixed-width
little-endian steps and reports the address of the first element matching
the requested target.

Example:
  scanctl scan --pid 4242 --addr 0x7FF6A0000000 --size 0x10000 --value 1234
  scanctl scan --process game.exe --addr 0x1F000000 --size 4096 --min 10 --max 20
  scanctl scan --pid 4242 --addr 0x1F000000 --size 0x800 --name Health --full --pool 0x14A000000
  scanctl scan --dump heap.bin --dump-base 0x1F000000 --addr 0x1F000100 --size 256 --value 0xDEADBEEF`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan()
		},
	}
}

func runScan() error {
	base, err := parseAddr(scanAddr)
	if err != nil || scanAddr == "" {
		return fmt.Errorf("a valid --addr is required")
	}
	if scanSize == 0 {
		return fmt.Errorf("--size must be greater than zero")
	}

	mem, closeMem, err := openMemory()
	if err != nil {
		return err
	}
	defer closeMem()

	target, names, err := buildTarget(mem)
	if err != nil {
		return err
	}

	region := types.Region{Base: base, Size: scanSize}
	printVerbose("Scanning %s with stride %d\n", region, target.Stride())

	res := scan.Find(region, target, mem, names)

	if jsonOut {
		out := struct {
			Found   bool   `json:"found"`
			Address string `json:"address,omitempty"`
			Reason  string `json:"reason,omitempty"`
		}{Found: res.Found}
		if res.Found {
			out.Address = res.Addr.String()
		} else {
			out.Reason = res.Reason.String()
		}
		return printJSON(out)
	}

	if !res.Found {
		printInfo("no match (%s)\n", res.Reason)
		return nil
	}
	printInfo("%s (offset +0x%X)\n", res.Addr, uint64(res.Addr-region.Base))
	return nil
}

// buildTarget translates the scan flags into a Target and, for symbolic
// scans, a resolver backed by the target's name pool.
func buildTarget(mem types.Memory) (scan.Target, types.Resolver, error) {
	switch {
	case scanName != "":
		if scanValue != "" || scanMin != "" {
			return scan.Target{}, nil, fmt.Errorf("--name cannot be combined with numeric targets")
		}
		if scanPool == "" {
			return scan.Target{}, nil, fmt.Errorf("--name requires --pool")
		}
		poolBase, err := parseAddr(scanPool)
		if err != nil {
			return scan.Target{}, nil, fmt.Errorf("invalid --pool: %w", err)
		}
		return scan.Name(scanName, scanFull), namepool.New(mem, poolBase), nil

	case scanMin != "":
		if err := checkWidth(); err != nil {
			return scan.Target{}, nil, err
		}
		if scanMax == "" {
			return scan.Target{}, nil, fmt.Errorf("--min requires --max; use --value for an exact match")
		}
		lo, err := parseAddr(scanMin)
		if err != nil {
			return scan.Target{}, nil, fmt.Errorf("invalid --min: %w", err)
		}
		hi, err := parseAddr(scanMax)
		if err != nil {
			return scan.Target{}, nil, fmt.Errorf("invalid --max: %w", err)
		}
		return scan.Between(uint64(lo), uint64(hi), scanWidth), nil, nil

	case scanValue != "":
		if err := checkWidth(); err != nil {
			return scan.Target{}, nil, err
		}
		v, err := parseAddr(scanValue)
		if err != nil {
			return scan.Target{}, nil, fmt.Errorf("invalid --value: %w", err)
		}
		return scan.Exact(uint64(v), scanWidth), nil, nil

	default:
		return scan.Target{}, nil, fmt.Errorf("no target: pass --value, --min/--max or --name")
	}
}

func checkWidth() error {
	if scanWidth != 2 && scanWidth != 4 && scanWidth != 8 {
		return fmt.Errorf("--width must be 2, 4 or 8")
	}
	return nil
}
