// Command wordcount is the standard map/reduce example: counting
// words across a set of input files. File discovery, tokenization,
// and output formatting live here, outside the engine itself.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmrlib/mr"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("MAPREDUCE")
	v.AutomaticEnv()
	v.SetDefault("workers", 10)
	v.SetDefault("partitions", 1)
	v.SetDefault("output-dir", ".")
	v.SetDefault("verbose", false)

	cmd := &cobra.Command{
		Use:   "wordcount [glob ...]",
		Short: "count word frequencies across input files using the mr engine",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWordCount(v, args)
		},
	}

	flags := cmd.Flags()
	flags.Int("workers", v.GetInt("workers"), "number of worker goroutines")
	flags.Int("partitions", v.GetInt("partitions"), "number of partitions")
	flags.String("output-dir", v.GetString("output-dir"), "directory to write result-<partition>.txt files to")
	flags.Bool("verbose", v.GetBool("verbose"), "enable debug logging")
	flags.String("config", "", "optional YAML config file, layered under env vars and flags")
	v.BindPFlags(flags) //nolint:errcheck

	// Load an optional config file ahead of env vars and flags: viper
	// layers defaults < config file < env < flags.
	cobra.OnInitialize(func() {
		path, _ := flags.GetString("config")
		if path == "" {
			return
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "wordcount: reading config %q: %v\n", path, err)
		}
	})

	return cmd
}

func runWordCount(v *viper.Viper, globs []string) error {
	level := zerolog.InfoLevel
	if v.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	mr.ConfigureLogging(level)

	var inputs []string
	for _, g := range globs {
		matches, err := filepath.Glob(g)
		if err != nil {
			return fmt.Errorf("wordcount: bad glob %q: %w", g, err)
		}
		inputs = append(inputs, matches...)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("wordcount: no input files matched %v", globs)
	}

	outputDir := v.GetString("output-dir")
	numWorkers := v.GetInt("workers")
	numPartitions := v.GetInt("partitions")

	start := time.Now()
	counter := &wordCounter{}

	err := mr.Run(inputs, counter.Map, makeReduce(outputDir), numWorkers, numPartitions)
	elapsed := time.Since(start)

	if err != nil {
		return err
	}

	log.Info().
		Dur("elapsed", elapsed).
		Int("files", len(inputs)).
		Int("mapped_words", counter.mappedWords()).
		Msg("word count complete")

	if numPartitions == 1 {
		fmt.Printf("output is in: %s\n", filepath.Join(outputDir, "result-0.txt"))
	} else {
		fmt.Printf("output is in: %s - %s\n",
			filepath.Join(outputDir, "result-0.txt"),
			filepath.Join(outputDir, fmt.Sprintf("result-%d.txt", numPartitions-1)))
	}
	return nil
}

// wordCounter holds the mapper's running count across all the files it
// has been invoked on, reported in the completion log line.
type wordCounter struct {
	words atomic.Int64
}

func (w *wordCounter) Map(filename string, emit mr.Emitter) {
	data, err := os.ReadFile(filename)
	if err != nil {
		mr.Statusf("error reading %s: %v", filename, err)
		return
	}

	for _, line := range strings.Split(string(data), "\n") {
		for _, word := range strings.Fields(strings.ToLower(line)) {
			w.words.Add(1)
			emit.Emit(word, "1")
		}
	}
}

func (w *wordCounter) mappedWords() int {
	return int(w.words.Load())
}

// makeReduce returns a ReducerFunc that sums the "1"s GetNext hands
// back for a key and appends "<key>: <count>" to that partition's
// result file.
func makeReduce(outputDir string) mr.ReducerFunc {
	return func(key string, partitionIdx int, values mr.Collector) {
		count := 0
		for {
			v, ok := values.GetNext(key)
			if !ok {
				break
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				continue
			}
			count += n
		}

		path := filepath.Join(outputDir, fmt.Sprintf("result-%d.txt", partitionIdx))
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			mr.Statusf("error opening %s: %v", path, err)
			return
		}
		defer f.Close()

		fmt.Fprintf(f, "%s: %d\n", key, count)
	}
}
