// Minimal fasthttp server whose internal logging goes through the engine.
package main

import (
	"github.com/valyala/fasthttp"

	"github.com/joeloftusdev/zerg"
	"github.com/joeloftusdev/zerg/compat"
)

func main() {
	logger, err := zerg.NewBuilder().
		Directory("/var/log/").
		Name("fasthttp.log").
		Level(zerg.LevelInfo).
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Close()

	server := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			ctx.WriteString("ok")
		},
		Logger: compat.NewFastHTTPAdapter(logger),
	}
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}
