// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bcdump prints an llvm-bcanalyzer-style nested trace of a bitcode
// file's block and record structure. It performs no IR-level interpretation:
// record fields are printed as plain integers, names come only from the
// BLOCKINFO block and the schema package's reference tables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/dsnet/bitstream/bitstream"
	"github.com/dsnet/bitstream/schema"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bcdump",
		Short: "Dump the block/record structure of an LLVM bitstream file",
	}

	var noNames bool
	dumpCmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the nested block/record trace of a bitstream file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0], noNames)
		},
	}
	dumpCmd.Flags().BoolVar(&noNames, "no-names", false, "Print raw numeric IDs only, ignoring BLOCKINFO and schema names")

	rootCmd.AddCommand(dumpCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bcdump:", err)
		os.Exit(1)
	}
}

func runDump(path string, noNames bool) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	sig, stream, err := bitstream.ParseSignature(buf)
	if err != nil {
		return fmt.Errorf("parsing signature: %w", err)
	}
	fmt.Printf("<MAGIC magic=0x%08x", sig.Magic)
	if sig.Magic == 0x0B17C0DE {
		fmt.Printf(" version=%d offset=%d size=%d cputype=0x%x inner_magic=0x%08x",
			sig.Version, sig.Offset, sig.Size, sig.CPUType, sig.Magic2)
	}
	fmt.Println("/>")

	rd := bitstream.NewReader()
	v := &dumpVisitor{rd: rd, noNames: noNames}
	top := bitstream.NewBlockIter(rd, stream)
	if err := driveDump(top, v); err != nil {
		return err
	}
	printBlockInfoSummary(rd)
	return nil
}

// printBlockInfoSummary lists every block BLOCKINFO named, in ascending ID
// order, regardless of the order BLOCKINFO records happened to declare them.
func printBlockInfoSummary(rd *bitstream.Reader) {
	ids := maps.Keys(rd.AllBlockInfo())
	if len(ids) == 0 {
		return
	}
	slices.Sort(ids)
	fmt.Println("<!-- BLOCKINFO summary -->")
	for _, id := range ids {
		bi := rd.BlockInfo(id)
		fmt.Printf("<!-- block %d name=%q -->\n", id, bi.Name)
	}
}

// dumpVisitor prints a nested trace as it is pulled through BlockIter;
// cmd/bcdump drives the pull façade directly, rather than bitstream.Decode,
// so it can print the <BLOCK ...> opening tag before descending (the push
// Visitor only learns a block's ID, not its declared length, before
// deciding whether to enter it).
type dumpVisitor struct {
	rd      *bitstream.Reader
	noNames bool
	depth   int
}

func driveDump(it *bitstream.BlockIter, v *dumpVisitor) error {
	for {
		item, err := it.Next()
		if err != nil {
			return err
		}
		if item.Block == nil && item.Record == nil {
			return nil
		}
		if item.Block != nil {
			v.enterBlock(item.Block)
			if err := driveDump(item.Block, v); err != nil {
				return err
			}
			v.exitBlock(item.Block.ID())
			continue
		}
		rec, err := item.Record.ToRecord()
		if err != nil {
			return err
		}
		v.record(it.ID(), rec)
	}
}

func (v *dumpVisitor) indent() string {
	return fmt.Sprintf("%*s", v.depth*2, "")
}

func (v *dumpVisitor) blockLabel(id uint32) string {
	if !v.noNames {
		if name, ok := schema.BlockIDName(uint64(id)); ok {
			return name
		}
		if bi := v.rd.BlockInfo(id); bi != nil && bi.Name != "" {
			return bi.Name
		}
	}
	return fmt.Sprintf("BLOCK%d", id)
}

func (v *dumpVisitor) recordLabel(blockID uint32, code uint64) string {
	if !v.noNames {
		if bi := v.rd.BlockInfo(blockID); bi != nil {
			if name, ok := bi.RecordNames[code]; ok {
				return name
			}
		}
	}
	return fmt.Sprintf("CODE%d", code)
}

func (v *dumpVisitor) enterBlock(b *bitstream.BlockIter) {
	n, _ := b.DeclaredLen()
	fmt.Printf("%s<%s NumWords=%d BlockCodeSize=%d>\n",
		v.indent(), v.blockLabel(b.ID()), n/4, b.AbbrevWidth())
	v.depth++
}

func (v *dumpVisitor) exitBlock(id uint32) {
	v.depth--
	fmt.Printf("%s</%s>\n", v.indent(), v.blockLabel(id))
}

func (v *dumpVisitor) record(blockID uint32, rec bitstream.Record) {
	fmt.Printf("%s<%s", v.indent(), v.recordLabel(blockID, rec.ID))
	for i, f := range rec.Fields {
		fmt.Printf(" op%d=%d", i, f)
	}
	if rec.Payload != nil {
		switch rec.Payload.Kind {
		case bitstream.PayloadChar6String:
			fmt.Printf(" value=%q", rec.Payload.Text)
		case bitstream.PayloadArray:
			fmt.Printf(" array=%v", rec.Payload.Values)
		case bitstream.PayloadBlob:
			fmt.Printf(" bloblen=%d", len(rec.Payload.Blob))
		}
	}
	fmt.Println("/>")
}
