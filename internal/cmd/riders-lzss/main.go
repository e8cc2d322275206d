// Command riders-lzss packs and unpacks Sonic Riders asset containers.
//
//	riders-lzss pack   <file> [-o compressed.bin] [-lazy]
//	riders-lzss unpack <file> [-o decompressed.bin]
package main

import (
	"context"
	"flag"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/city"
	"github.com/go-faster/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/romhack/riderslzss"
	"github.com/romhack/riderslzss/internal/cmd/app"
)

func writeFile(name string, data []byte) (re error) {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "create")
	}
	defer func() {
		if err := f.Close(); err != nil {
			re = multierr.Append(re, err)
		}
	}()
	if _, err := f.Write(data); err != nil {
		return errors.Wrap(err, "write")
	}
	return nil
}

func run(ctx context.Context, lg *zap.Logger) error {
	if len(os.Args) < 3 {
		return errors.New("usage: riders-lzss {pack|unpack} <file> [-o name] [-lazy]")
	}
	cmd, in := os.Args[1], os.Args[2]

	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	var arg struct {
		Out  string
		Lazy bool
	}
	fs.StringVar(&arg.Out, "o", "", "output file name")
	fs.BoolVar(&arg.Lazy, "lazy", false, "one-step lazy parsing (pack only)")
	if err := fs.Parse(os.Args[3:]); err != nil {
		return errors.Wrap(err, "flags")
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	var out []byte
	switch cmd {
	case "pack":
		if arg.Out == "" {
			arg.Out = "compressed.bin"
		}
		out = riderslzss.PackWith(data, riderslzss.EncodeOptions{Lazy: arg.Lazy})
	case "unpack":
		if arg.Out == "" {
			arg.Out = "decompressed.bin"
		}
		if out, err = riderslzss.Unpack(data); err != nil {
			return errors.Wrap(err, "unpack")
		}
	default:
		return errors.Errorf("unknown command %q", cmd)
	}

	if err := writeFile(arg.Out, out); err != nil {
		return errors.Wrap(err, "write output")
	}

	lg.Info("Done",
		zap.String("cmd", cmd),
		zap.String("output", arg.Out),
		zap.String("input_size", humanize.Bytes(uint64(len(data)))),
		zap.String("output_size", humanize.Bytes(uint64(len(out)))),
		zap.Uint64("digest", city.CH64(out)),
	)
	return nil
}

func main() {
	app.Run(run)
}
