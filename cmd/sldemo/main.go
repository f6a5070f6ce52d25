// Command sldemo exercises the datalib containers end to end: it packs a
// batch of payloads keyed by their xxhash digests, stages them in a queue
// in arrival order, drains the queue into a skip list, then runs searches
// and deletions and prints the per-level rendering.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"github.com/repmop/datalib/element"
	"github.com/repmop/datalib/queue"
	"github.com/repmop/datalib/skiplist"
)

func setupLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	return zerolog.New(output).With().Timestamp().Logger()
}

func compareU64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	log := setupLogger()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	log.Info().
		Int("levels", cfg.Levels).
		Float64("probability", cfg.Probability).
		Int("count", cfg.Count).
		Uint64("seed", cfg.Seed).
		Msg("starting demo")

	// Stage payloads in arrival order. Keys are the xxhash digests of the
	// payload bytes; the containers never look inside them.
	q := queue.New[uint64]()
	for i := 0; i < cfg.Count; i++ {
		payload := []byte(fmt.Sprintf("payload-%04d", i))
		q.PushTail(element.Pack(payload, xxhash.Sum64(payload)))
	}
	log.Info().Int("queued", q.Len()).Msg("payloads staged")

	list, err := skiplist.New[uint64](
		compareU64,
		skiplist.WithLevels(cfg.Levels),
		skiplist.WithProbability(cfg.Probability),
		skiplist.WithCapacity(cfg.Capacity),
		skiplist.WithRandSource(rand.NewPCG(cfg.Seed, cfg.Seed)),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("create list")
	}

	var keys []uint64
	for {
		e, ok := q.PopHead()
		if !ok {
			break
		}
		if err := list.Insert(e); err != nil {
			log.Fatal().Err(err).Uint64("key", e.Key()).Msg("insert")
		}
		keys = append(keys, e.Key())
	}
	log.Info().Int("inserted", list.Len()).Msg("queue drained")

	for _, key := range keys {
		if _, ok := list.Search(key); !ok {
			log.Fatal().Uint64("key", key).Msg("inserted key not found")
		}
	}
	log.Info().Int("verified", len(keys)).Msg("all inserted keys found")

	removed := 0
	for i, key := range keys {
		if i%2 == 0 && list.Delete(key) {
			removed++
		}
	}
	log.Info().Int("removed", removed).Int("remaining", list.Len()).Msg("deleted every other key")

	stats := list.Stats()
	log.Info().
		Int64("inserts", stats.Inserts).
		Int64("deletes", stats.Deletes).
		Int64("searches", stats.Searches).
		Int64("promotions", stats.Promotions).
		Int64("comparisons", stats.Comparisons).
		Msg("list stats")

	fmt.Print(list.Render())
}
