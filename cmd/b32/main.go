// Command b32 encodes or decodes FILE, or standard input, to standard
// output. With no FILE, or when FILE is -, it reads standard input.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/athorp/b32"
)

var flags struct {
	decode        bool
	alphabet      string
	pad           bool
	caseSensitive bool
	keepSpace     bool
	uint64Mode    bool
}

func main() {
	root := &cobra.Command{
		Use:          "b32 [flags] [FILE]",
		Short:        "base32 encode or decode FILE, or standard input, to standard output",
		Args:         cobra.MaximumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
	f := root.Flags()
	f.BoolVarP(&flags.decode, "decode", "d", false, "decode data")
	f.StringVarP(&flags.alphabet, "alphabet", "a", "std", `alphabet: "std", "zbase32", or a literal 32-symbol string`)
	f.BoolVarP(&flags.pad, "pad", "p", false, "pad encoded output to a multiple of 8 symbols")
	f.BoolVarP(&flags.caseSensitive, "case-sensitive", "s", false, "distinguish letter case when decoding")
	f.BoolVarP(&flags.keepSpace, "keep-whitespace", "W", false, "treat whitespace in decode input as an error instead of skipping it")
	f.BoolVarP(&flags.uint64Mode, "uint64", "n", false, "encode a decimal uint64, or decode a 13-symbol uint64")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func encoding() (*b32.Encoding, error) {
	alphabet := flags.alphabet
	switch alphabet {
	case "std":
		alphabet = b32.StdAlphabet
	case "zbase32":
		alphabet = b32.ZBase32Alphabet
	}
	enc, err := b32.NewEncoding(alphabet)
	if err != nil {
		return nil, err
	}
	if flags.pad {
		enc = enc.WithPadding(b32.StdPadding)
	}
	return enc.CaseSensitive(flags.caseSensitive).IgnoreWhitespace(!flags.keepSpace), nil
}

func run(cmd *cobra.Command, args []string) error {
	enc, err := encoding()
	if err != nil {
		return err
	}

	in := os.Stdin
	if len(args) == 1 && args[0] != "-" {
		in, err = os.Open(args[0])
		if err != nil {
			return errors.Wrapf(err, "opening %q", args[0])
		}
		defer in.Close()
	}
	buf, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}

	switch {
	case flags.uint64Mode && flags.decode:
		id, err := enc.Uint64(bytes.TrimSpace(buf))
		if err != nil {
			return err
		}
		fmt.Println(id)
	case flags.uint64Mode:
		id, err := strconv.ParseUint(string(bytes.TrimSpace(buf)), 0, 64)
		if err != nil {
			return errors.Wrap(err, "parsing integer")
		}
		fmt.Println(string(enc.AppendUint64(nil, id)))
	case flags.decode:
		out, err := enc.AppendDecode(nil, buf)
		if err != nil {
			return err
		}
		if _, err := os.Stdout.Write(out); err != nil {
			return errors.Wrap(err, "writing output")
		}
	default:
		fmt.Println(enc.EncodeToString(buf))
	}
	return nil
}
