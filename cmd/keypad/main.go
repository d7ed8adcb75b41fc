// Command keypad computes complexity scores for a file of door codes at the
// short and long chain depths and prints them to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"svw.info/keypad/internal/chain"
	"svw.info/keypad/internal/config"
	"svw.info/keypad/internal/cost"
	"svw.info/keypad/internal/domain"
)

func main() {
	cfgPath := flag.String("config", "keypad.yaml", "config file path")
	input := flag.String("input", "codes.txt", "codes file, one code per line")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read input:", err)
		os.Exit(1)
	}
	codes, err := domain.ParseCodes(string(data))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	calc := cost.NewCalculator(chain.New())
	ctx := context.Background()
	for _, depth := range []int{cfg.Chain.ShortDepth, cfg.Chain.LongDepth} {
		total, st, err := calc.Complexity(ctx, codes, depth)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("chain depth %d: complexity %s (%d expansions, %d cache hits, %v)\n",
			depth, humanize.Comma(int64(total)), st.Expansions, st.CacheHits, st.Duration)
	}
}
