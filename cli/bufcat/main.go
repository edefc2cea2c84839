package main

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/bytewrap/bytewrap"
	"github.com/bytewrap/bytewrap/common"
	"github.com/bytewrap/bytewrap/common/buf"
	"github.com/bytewrap/bytewrap/common/bufio"
	E "github.com/bytewrap/bytewrap/common/exceptions"
	"github.com/bytewrap/bytewrap/common/log"
	"github.com/bytewrap/bytewrap/common/rw"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ulikunitz/xz"
	"lukechampine.com/blake3"
)

var logger = log.NewLogger("bufcat")

type flags struct {
	Input      string
	Output     string
	BufferSize int
	Line       bool
	CountLines bool
	Compress   bool
	Decompress bool
	Checksum   bool
	Verbose    bool
}

func main() {
	f := new(flags)

	command := &cobra.Command{
		Use:     "bufcat",
		Short:   "copy a byte stream through buffering decorators",
		Version: bytewrap.VersionStr,
		Run: func(cmd *cobra.Command, args []string) {
			run(f)
		},
	}

	command.Flags().StringVarP(&f.Input, "input", "i", "-", "Input file, - for stdin.")
	command.Flags().StringVarP(&f.Output, "output", "o", "-", "Output file, - for stdout.")
	command.Flags().IntVarP(&f.BufferSize, "buffer-size", "b", buf.DefaultCapacity, "Buffer capacity in bytes.")
	command.Flags().BoolVarP(&f.Line, "line", "l", false, "Use a line-buffered writer on the output.")
	command.Flags().BoolVarP(&f.CountLines, "count-lines", "c", false, "Count copied lines and log the total.")
	command.Flags().BoolVarP(&f.Compress, "xz", "z", false, "Compress the output with xz.")
	command.Flags().BoolVarP(&f.Decompress, "unxz", "d", false, "Decompress the input with xz.")
	command.Flags().BoolVarP(&f.Checksum, "blake3", "s", false, "Log the blake3 digest of the copied bytes.")
	command.Flags().BoolVarP(&f.Verbose, "verbose", "v", false, "Enable verbose logging.")

	if err := command.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func run(f *flags) {
	if f.Verbose {
		logrus.SetLevel(logrus.TraceLevel)
	}

	input, err := openInput(f.Input)
	if err != nil {
		logger.Fatal(E.Cause(err, "open input"))
	}
	defer common.Close(input)

	var source io.Reader = input
	if f.Decompress {
		source, err = xz.NewReader(source)
		if err != nil {
			logger.Fatal(E.Cause(err, "open xz input"))
		}
	}

	output, err := openOutput(f.Output)
	if err != nil {
		logger.Fatal(E.Cause(err, "open output"))
	}
	defer common.Close(output)

	var destination io.Writer = output
	var xzWriter *xz.Writer
	if f.Compress {
		xzWriter, err = xz.NewWriter(destination)
		if err != nil {
			logger.Fatal(E.Cause(err, "open xz output"))
		}
		destination = xzWriter
	}

	var hash *blake3.Hasher
	if f.Checksum {
		hash = blake3.New(32, nil)
		destination = io.MultiWriter(destination, hash)
	}

	reader := bufio.NewReaderSize(rw.SourceFromReader(source), f.BufferSize)
	sink := rw.SinkFromWriter(destination)

	var copied int
	var lines int
	if f.Line || f.CountLines {
		writer := bufio.NewLineWriter[rw.Sink](sink)
		for {
			line, rErr := reader.ReadUntil('\n')
			if rErr == io.EOF {
				break
			}
			if rErr != nil {
				logger.Fatal(E.Cause(rErr, "read input"))
			}
			if wErr := writer.Write(line); wErr != nil {
				logger.Fatal(E.Cause(wErr, "write output"))
			}
			copied += len(line)
			lines++
		}
		if err = writer.Flush(); err != nil {
			logger.Fatal(E.Cause(err, "flush output"))
		}
	} else {
		writer := bufio.NewWriterSize[rw.Sink](sink, f.BufferSize)
		for {
			chunk, rErr := reader.Fill()
			if rErr != nil {
				logger.Fatal(E.Cause(rErr, "read input"))
			}
			if len(chunk) == 0 {
				break
			}
			if wErr := writer.Write(chunk); wErr != nil {
				logger.Fatal(E.Cause(wErr, "write output"))
			}
			copied += len(chunk)
			reader.Consume(len(chunk))
		}
		if err = writer.Flush(); err != nil {
			logger.Fatal(E.Cause(err, "flush output"))
		}
	}

	if xzWriter != nil {
		if err = xzWriter.Close(); err != nil {
			logger.Fatal(E.Cause(err, "close xz output"))
		}
	}

	logger.Debug("copied ", copied, " bytes")
	if f.CountLines {
		logger.Info("copied ", lines, " lines")
	}
	if hash != nil {
		logger.Info("blake3 ", hex.EncodeToString(hash.Sum(nil)))
	}
}

func openInput(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

func openOutput(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdout, nil
	}
	return os.Create(path)
}
