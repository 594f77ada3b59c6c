// Command refpack compresses and decompresses files in the RefPack family
// of formats from the command line.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	logcli "github.com/apex/log/handlers/cli"

	"github.com/razzie/refpack"
)

func main() {
	var (
		decompressMode = flag.Bool("d", false, "Decompress the input instead of compressing it")
		formatName     = flag.String("format", "", "Dialect: reference, sims12, simcity4, sims34 (default from config, else reference)")
		strategyName   = flag.String("strategy", "", "Compression strategy: fastest, fast, optimal (default from config, else fast)")
		outputPath     = flag.String("o", "", "Output path (default: stdout)")
		peek           = flag.Bool("peek", false, "Print the input's header info and exit without decoding")
		configPath     = flag.String("config", "", "Path to a TOML config file (default: platform config dir if present)")
		verbose        = flag.Bool("verbose", false, "Verbose logging")
	)
	flag.Parse()

	log.SetHandler(logcli.Default)

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = GetConfigPath()
	}
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		log.WithError(err).Fatal("refpack: reading config")
	}

	if *formatName == "" {
		*formatName = cfg.Compression.Format
	}
	if *strategyName == "" {
		*strategyName = cfg.Compression.Strategy
	}
	if !*verbose {
		*verbose = cfg.Logging.Verbose
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	format, err := parseFormat(*formatName)
	if err != nil {
		log.WithError(err).Fatal("refpack: invalid --format")
	}

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: refpack [flags] <input-file>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	input, err := os.ReadFile(args[0])
	if err != nil {
		log.WithError(err).Fatal("refpack: reading input file")
	}

	if *peek {
		info, err := refpack.Peek(format, bytes.NewReader(input))
		if err != nil {
			log.WithError(err).Fatal("refpack: reading header")
		}
		fmt.Printf("format: %s\ndecompressed_length: %d\ncompressed_length: %d\nhas_compressed_length: %t\n",
			info.Format, info.DecompressedLength, info.CompressedLength, info.HasCompressedLength)
		return
	}

	var output []byte
	if *decompressMode {
		output, err = refpack.EasyDecompress(format, input)
	} else {
		strategy, serr := parseStrategy(*strategyName)
		if serr != nil {
			log.WithError(serr).Fatal("refpack: invalid --strategy")
		}
		output, err = refpack.EasyCompress(format, input, strategy)
	}
	if err != nil {
		log.WithError(err).Fatal("refpack: operation failed")
	}

	if *outputPath == "" {
		os.Stdout.Write(output)
		return
	}
	if err := os.WriteFile(*outputPath, output, 0o644); err != nil {
		log.WithError(err).Fatal("refpack: writing output file")
	}
}

func parseFormat(s string) (refpack.Format, error) {
	switch strings.ToLower(s) {
	case "", "reference":
		return refpack.Reference, nil
	case "sims12":
		return refpack.TheSims12, nil
	case "simcity4":
		return refpack.SimCity4, nil
	case "sims34":
		return refpack.TheSims34, nil
	default:
		return refpack.Reference, fmt.Errorf("unknown format %q", s)
	}
}

func parseStrategy(s string) (refpack.Strategy, error) {
	switch strings.ToLower(s) {
	case "", "fast":
		return refpack.Fast, nil
	case "fastest":
		return refpack.Fastest, nil
	case "optimal":
		return refpack.Optimal, nil
	default:
		return refpack.Fast, fmt.Errorf("unknown strategy %q", s)
	}
}
