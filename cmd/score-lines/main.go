// Command score-lines prints mock survival probabilities for each line of
// a file, or of stdin when no file is given.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/ajharbinger/line-survival-mock/internal/logger"
	"github.com/ajharbinger/line-survival-mock/internal/scoring"
	"github.com/ajharbinger/line-survival-mock/pkg/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.New()
	log := logger.New(cfg.LogLevel)

	seed := flag.Int64("seed", cfg.Seed, "random seed, 0 seeds from the clock")
	flag.Parse()

	in := io.Reader(os.Stdin)
	if path := flag.Arg(0); path != "" {
		f, err := os.Open(path)
		if err != nil {
			log.Fatal("Failed to open input", err, "path", path)
		}
		defer f.Close()
		in = f
	}

	if err := scoreLines(in, os.Stdout, scoring.NewEngine(*seed)); err != nil {
		log.Fatal("Failed to score lines", err)
	}
}

// scoreLines writes "<probability>\t<class>\t<line>" for every input line
func scoreLines(in io.Reader, out io.Writer, engine *scoring.Engine) error {
	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if _, err := fmt.Fprintf(w, "%.3f\t%s\t%s\n", engine.Score(line), scoring.Classify(line), line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return w.Flush()
}
