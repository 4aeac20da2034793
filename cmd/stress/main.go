// Stress demo: many producers hammering one engine, then a drain and a
// throughput report.
package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/joeloftusdev/zerg"
)

const (
	producers   = 8
	perProducer = 100_000
)

func main() {
	logger, err := zerg.NewBuilder().
		Directory("./").
		Name("stress.log").
		Level(zerg.LevelDebug).
		BufferSize(8192).
		MaxFileSize(256 * 1024 * 1024).
		Build()
	if err != nil {
		panic(err)
	}

	start := time.Now()
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				logger.Log(zerg.LevelInfo, "stress.go", 0, "producer {} message {}", p, i)
			}
		}(p)
	}
	wg.Wait()

	logger.Sync()
	logger.WaitUntilEmpty()
	elapsed := time.Since(start)

	processed := logger.Processed()
	dropped := logger.Dropped()
	if err := logger.Close(); err != nil {
		panic(err)
	}

	total := producers * perProducer
	fmt.Printf("%d records in %v (%.0f rec/s), %d written, %d dropped\n",
		total, elapsed, float64(total)/elapsed.Seconds(), processed, dropped)
}
