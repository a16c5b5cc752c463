package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/hupe1980/vecmmap"
)

func (c *cli) flagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flags",
		Short: "flag store tools",
	}
	cmd.PersistentFlags().Uint64Var(&c.minCapacity, "min-capacity", vecmmap.DefaultMinFlagCapacity,
		"smallest slot file in bytes (power of two)")

	inspect := &cobra.Command{
		Use:   "inspect <dir>",
		Short: "print the status record and set count of a flag store",
		Long: `
Print the status record of a flag store and count the set flags of the
active slot. Nothing is created or modified.
`,
		Args: cobra.ExactArgs(1),
		RunE: c.runFlagsInspect,
	}
	get := &cobra.Command{
		Use:   "get <dir> <key>",
		Short: "print one flag",
		Args:  cobra.ExactArgs(2),
		RunE:  c.runFlagsGet,
	}
	grow := &cobra.Command{
		Use:   "grow <dir> <len>",
		Short: "grow a flag store to len flags and flush it",
		Args:  cobra.ExactArgs(2),
		RunE:  c.runFlagsGrow,
	}
	set := &cobra.Command{
		Use:   "set <dir> <key> <true|false>",
		Short: "set one flag and flush the store",
		Args:  cobra.ExactArgs(3),
		RunE:  c.runFlagsSet,
	}

	cmd.AddCommand(inspect, get, grow, set)
	return cmd
}

func (c *cli) runFlagsInspect(cmd *cobra.Command, args []string) error {
	info, err := vecmmap.InspectFlags(args[0])
	if err != nil {
		return err
	}

	tbl := tablewriter.NewWriter(cmd.OutOrStdout())
	tbl.SetHeader([]string{"Field", "Value"})
	tbl.Append([]string{"len", strconv.FormatUint(info.Len, 10)})
	tbl.Append([]string{"active slot", info.ActiveSlot.String()})
	tbl.Append([]string{"slot file", info.SlotFile})
	tbl.Append([]string{"slot size", humanize.IBytes(uint64(info.SlotBytes))})
	tbl.Append([]string{"set", humanize.Comma(int64(info.SetCount))})
	tbl.Render()
	return nil
}

func (c *cli) runFlagsGet(cmd *cobra.Command, args []string) error {
	key, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid key %q: %w", args[1], err)
	}

	store, err := vecmmap.OpenFlags(args[0], c.options()...)
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Fprintln(cmd.OutOrStdout(), store.Get(key))
	return nil
}

func (c *cli) runFlagsGrow(cmd *cobra.Command, args []string) error {
	n, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid length %q: %w", args[1], err)
	}

	store, err := vecmmap.OpenFlags(args[0], c.options()...)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Grow(n); err != nil {
		return err
	}
	if err := store.Flusher()(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "len %d, slot %s, capacity %s\n",
		store.Len(), store.ActiveSlot(), humanize.IBytes(store.Capacity()))
	return nil
}

func (c *cli) runFlagsSet(cmd *cobra.Command, args []string) error {
	key, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid key %q: %w", args[1], err)
	}
	value, err := strconv.ParseBool(args[2])
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[2], err)
	}

	store, err := vecmmap.OpenFlags(args[0], c.options()...)
	if err != nil {
		return err
	}
	defer store.Close()

	if key >= store.Len() {
		return fmt.Errorf("key %d is beyond len %d: %w", key, store.Len(), vecmmap.ErrInvalidArgument)
	}
	prev := store.Set(key, value)
	if err := store.Flusher()(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d: %t -> %t\n", key, prev, value)
	return nil
}
