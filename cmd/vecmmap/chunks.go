package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/hupe1980/vecmmap"
)

func (c *cli) chunksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chunks",
		Short: "chunk directory tools",
	}

	list := &cobra.Command{
		Use:   "list <dir>",
		Short: "list the chunks of a directory in id order",
		Long: `
List the chunk files of a directory in id order without mapping them.
Fails if the ids have a gap.
`,
		Args: cobra.ExactArgs(1),
		RunE: c.runChunksList,
	}
	create := &cobra.Command{
		Use:   "create <dir> <id> <bytes>",
		Short: "create a zero-filled chunk of exactly bytes length",
		Args:  cobra.ExactArgs(3),
		RunE:  c.runChunksCreate,
	}

	cmd.AddCommand(list, create)
	return cmd
}

func (c *cli) runChunksList(cmd *cobra.Command, args []string) error {
	infos, err := vecmmap.ScanChunks(args[0])
	if err != nil {
		return err
	}

	var total int64
	tbl := tablewriter.NewWriter(cmd.OutOrStdout())
	tbl.SetAutoFormatHeaders(false)
	tbl.SetHeader([]string{"ID", "File", "Size"})
	for _, info := range infos {
		total += info.Size
		tbl.Append([]string{
			strconv.Itoa(info.ID),
			filepath.Base(info.Path),
			humanize.IBytes(uint64(info.Size)),
		})
	}
	tbl.SetFooter([]string{"", strconv.Itoa(len(infos)) + " chunks", humanize.IBytes(uint64(total))})
	tbl.Render()
	return nil
}

func (c *cli) runChunksCreate(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid chunk id %q: %w", args[1], err)
	}
	size, err := humanize.ParseBytes(args[2])
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", args[2], err)
	}

	chunk, err := vecmmap.CreateChunk[uint8](args[0], id, int64(size), c.options()...)
	if err != nil {
		return err
	}
	if err := chunk.Flush(); err != nil {
		_ = chunk.Close()
		return err
	}
	if err := chunk.Close(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", chunk.Path(), humanize.IBytes(size))
	return nil
}
