package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/scankit/pkg/hexdump"
)

var (
	readAddr string
	readSize int
)

func init() {
	cmd := newReadCmd()
	addTargetFlags(cmd)
	cmd.Flags().StringVar(&readAddr, "addr", "", "Address to read from")
	cmd.Flags().IntVar(&readSize, "size", 256, "Number of bytes to read")
	rootCmd.AddCommand(cmd)
}

func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read",
		Short: "Hexdump a range of target memory",
		Long: `The read command snapshots a byte range of the target's memory and prints
it as a hexdump.

Example:
  scanctl read --pid 4242 --addr 0x7FF6A0001000 --size 64
  scanctl read --dump heap.bin --dump-base 0x1F000000 --addr 0x1F000040`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead()
		},
	}
}

func runRead() error {
	addr, err := parseAddr(readAddr)
	if err != nil || readAddr == "" {
		return fmt.Errorf("a valid --addr is required")
	}
	if readSize <= 0 {
		return fmt.Errorf("--size must be greater than zero")
	}

	mem, closeMem, err := openMemory()
	if err != nil {
		return err
	}
	defer closeMem()

	buf, err := mem.Read(addr, readSize)
	if err != nil {
		return err
	}
	if len(buf) < readSize {
		printVerbose("short read: got %d of %d bytes\n", len(buf), readSize)
	}
	hexdump.Write(os.Stdout, addr, buf)
	return nil
}
