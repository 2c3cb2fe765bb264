package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"gridsnake/internal/autopilot"
	"gridsnake/pkg/snake"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type gameResult struct {
	id    string
	seed  int64
	score int
	ticks int
	state snake.State
}

func main() {
	games := flag.Int("games", 200, "number of games to play")
	maxTicks := flag.Int("ticks", 5000, "tick limit per game")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	firstSeed := flag.Int64("seed", 1, "seed of the first game; game i uses seed+i")
	var overrides kvList
	flag.Var(&overrides, "set", "board override in key=value form, e.g. w=20 (repeatable)")
	flag.Parse()

	kv := map[string]string{}
	for _, item := range overrides {
		parts := strings.SplitN(item, "=", 2)
		if len(parts) != 2 {
			log.Printf("ignoring malformed override %q", item)
			continue
		}
		kv[parts[0]] = parts[1]
	}
	base := snake.FromMap(kv)
	if *workers <= 0 {
		*workers = 1
	}

	fmt.Printf("Playing %d games on %dx%d (%d workers, %d tick limit)\n",
		*games, base.Width, base.Height, *workers, *maxTicks)

	jobs := make(chan int64)
	results := make(chan gameResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- play(base, seed, *maxTicks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *games; i++ {
			jobs <- *firstSeed + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []gameResult
	for res := range results {
		all = append(all, res)
	}
	if len(all) == 0 {
		log.Fatal("no games played")
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		return all[i].seed < all[j].seed
	})
	elapsed := time.Since(start)

	s := summarize(all)
	fmt.Printf("\nscore min=%d median=%d mean=%.2f max=%d  unfinished=%d  (elapsed %s)\n",
		s.min, s.median, s.mean, s.max, s.unfinished, elapsed.Round(time.Millisecond))

	fmt.Println("\nTop 5 games:")
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) score=%d ticks=%d state=%s seed=%d session=%s\n",
			i+1, res.score, res.ticks, res.state, res.seed, res.id)
	}
}

func play(base snake.Config, seed int64, maxTicks int) gameResult {
	cfg := base
	cfg.Seed = seed
	g := snake.NewWithConfig(cfg)

	input := make([]snake.Input, 1)
	for g.IsOngoing() && g.Tick() < maxTicks {
		input[0] = autopilot.Choose(g)
		g.Update(input)
	}
	return gameResult{id: g.ID(), seed: g.Config().Seed, score: g.Score(), ticks: g.Tick(), state: g.State()}
}

type summary struct {
	min, median, max int
	mean             float64
	unfinished       int
}

// summarize expects results sorted by descending score.
func summarize(all []gameResult) summary {
	s := summary{max: all[0].score, min: all[len(all)-1].score, median: all[len(all)/2].score}
	total := 0
	for _, res := range all {
		total += res.score
		if res.state == snake.Ongoing {
			s.unfinished++
		}
	}
	s.mean = float64(total) / float64(len(all))
	return s
}
