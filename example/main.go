// Command example walks through both data structures: it sorts a random
// slice on a bounded scheduler and fills a hash table far enough to watch
// it resize.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/theflywheel/dstructs/hashtable"
	"github.com/theflywheel/dstructs/psort"
)

type config struct {
	Sort struct {
		Elements int   `toml:"elements"`
		Workers  int   `toml:"workers"`
		Seed     int64 `toml:"seed"`
	} `toml:"sort"`
	Table struct {
		Keys int `toml:"keys"`
	} `toml:"table"`
}

func defaultConfig() config {
	var c config
	c.Sort.Elements = 1_000_000
	c.Sort.Workers = 0 // one per CPU
	c.Sort.Seed = time.Now().UnixNano()
	c.Table.Keys = 20
	return c
}

func main() {
	log := logrus.New()

	app := &cli.App{
		Name:  "example",
		Usage: "demo runs for the dstructs parallel sort and hash table",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "optional TOML file overriding the demo parameters",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "sort",
				Usage: "sort a random slice with the fork/join merge sort",
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c.String("config"))
					if err != nil {
						return err
					}
					return runSort(log, cfg)
				},
			},
			{
				Name:  "table",
				Usage: "fill a hash table past a resize and print its buckets",
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c.String("config"))
					if err != nil {
						return err
					}
					return runTable(log, cfg)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return cfg, nil
}

func runSort(log *logrus.Logger, cfg config) error {
	rng := rand.New(rand.NewSource(cfg.Sort.Seed))
	elems := make([]int, cfg.Sort.Elements)
	for i := range elems {
		elems[i] = rng.Int()
	}

	log.WithFields(logrus.Fields{
		"elements": humanize.Comma(int64(len(elems))),
		"workers":  cfg.Sort.Workers,
		"seed":     cfg.Sort.Seed,
	}).Info("sorting")

	start := time.Now()
	psort.Sort(psort.NewPool(cfg.Sort.Workers), elems)
	elapsed := time.Since(start)

	for i := 1; i < len(elems); i++ {
		if elems[i-1] > elems[i] {
			return fmt.Errorf("result not sorted at index %d", i)
		}
	}

	rate := float64(len(elems)) / elapsed.Seconds()
	log.WithFields(logrus.Fields{
		"elapsed": elapsed.Round(time.Millisecond),
		"rate":    humanize.CommafWithDigits(rate, 0) + " elements/s",
	}).Info("sorted and verified")
	return nil
}

func runTable(log *logrus.Logger, cfg config) error {
	tb := hashtable.NewString[int]()
	log.WithField("capacity", tb.Cap()).Info("table created")

	for i := 0; i < cfg.Table.Keys; i++ {
		before := tb.Cap()
		tb.Put(fmt.Sprintf("key-%d", i), i*100)
		if after := tb.Cap(); after != before {
			log.WithFields(logrus.Fields{
				"entries": tb.Len(),
				"from":    before,
				"to":      after,
			}).Info("table resized")
		}
	}

	// Replace one value; the table hands the old one back.
	prev, replaced := tb.Put("key-2", 999)
	if !replaced {
		return fmt.Errorf("expected key-2 to be replaced")
	}
	log.WithFields(logrus.Fields{"previous": prev, "current": 999}).Info("key-2 updated")

	if v, ok := tb.Get("key-2"); !ok || v != 999 {
		return fmt.Errorf("key-2 readback failed: got %d, present %v", v, ok)
	}

	log.WithFields(logrus.Fields{
		"entries": tb.Len(),
		"buckets": tb.Cap(),
	}).Info("final layout")
	return tb.Fprint(os.Stdout)
}
