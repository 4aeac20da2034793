// Echo server wiring the engine into gnet through the compat adapter.
package main

import (
	"github.com/panjf2000/gnet/v2"

	"github.com/joeloftusdev/zerg"
	"github.com/joeloftusdev/zerg/compat"
)

type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	logger, err := zerg.NewBuilder().
		Directory("/var/log/").
		Name("gnet.log").
		Level(zerg.LevelDebug).
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Close()

	err = gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(compat.NewGnetAdapter(logger)),
	)
	if err != nil {
		panic(err)
	}
}
