// Simple demo: one engine, a handful of records, clean shutdown.
package main

import (
	"fmt"

	"github.com/joeloftusdev/zerg"
)

func main() {
	logger, err := zerg.NewBuilder().
		Directory("./").
		Name("simple.log").
		Level(zerg.LevelDebug).
		Build()
	if err != nil {
		panic(err)
	}

	logger.Log(zerg.LevelDebug, "main.go", 20, "starting up")
	logger.Log(zerg.LevelInfo, "main.go", 21, "answer is {}", 42)
	logger.Log(zerg.LevelWarn, "main.go", 22, "pi is roughly {:.2f}", 3.14159)
	logger.Log(zerg.LevelError, "main.go", 23, "something {} happened", "bad")

	logger.Sync()
	if err := logger.Close(); err != nil {
		panic(err)
	}
	fmt.Printf("wrote %d records, dropped %d\n", logger.Processed(), logger.Dropped())
}
