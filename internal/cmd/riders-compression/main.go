// Command riders-compression compares the Riders LZSS codec against
// general-purpose block codecs on a given asset file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"go.uber.org/zap"

	"github.com/romhack/riderslzss"
	"github.com/romhack/riderslzss/internal/cmd/app"
)

func run(ctx context.Context, lg *zap.Logger) error {
	var arg struct {
		File string
		Lazy bool
	}
	flag.StringVar(&arg.File, "f", "", "input file")
	flag.BoolVar(&arg.Lazy, "lazy", false, "one-step lazy parsing for riders-lzss")
	flag.Parse()
	if arg.File == "" {
		return errors.New("no input file, use -f")
	}

	data, err := os.ReadFile(arg.File)
	if err != nil {
		return errors.Wrap(err, "read")
	}
	lg.Info("Read input",
		zap.String("file", arg.File),
		zap.String("size", humanize.Bytes(uint64(len(data)))),
	)

	report := func(name string, n int, d time.Duration) {
		fmt.Printf("%-12s %12s %8.2f%% %12s\n",
			name, humanize.Bytes(uint64(n)), float64(n)/float64(len(data))*100, d.Round(time.Microsecond))
	}

	{
		start := time.Now()
		packed := riderslzss.PackWith(data, riderslzss.EncodeOptions{Lazy: arg.Lazy})
		report("riders-lzss", len(packed), time.Since(start))
	}
	{
		c := &lz4.Compressor{}
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		start := time.Now()
		n, err := c.CompressBlock(data, buf)
		if err != nil {
			return errors.Wrap(err, "lz4")
		}
		report("lz4", n, time.Since(start))
	}
	{
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return errors.Wrap(err, "zstd")
		}
		start := time.Now()
		buf := enc.EncodeAll(data, nil)
		report("zstd", len(buf), time.Since(start))
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, "zstd close")
		}
	}

	return nil
}

func main() {
	app.Run(run)
}
