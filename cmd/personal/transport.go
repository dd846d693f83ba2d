package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/defiweb/go-eth/rpc/transport"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/chronicleprotocol/personal/core"
)

const (
	backendGoEth = "go-eth"
	backendGeth  = "geth"
)

// newTransport returns the transport for the given backend and a function releasing it.
func newTransport(ctx context.Context, backend, url string) (core.Transport, func(), error) {
	switch backend {
	case backendGoEth:
		if strings.HasPrefix(url, "ws://") || strings.HasPrefix(url, "wss://") {
			t, err := transport.NewWebsocket(transport.WebsocketOptions{Context: ctx, URL: url})
			if err != nil {
				return nil, nil, err
			}
			return core.NewGoEthTransport(t), func() {}, nil
		}
		t, err := transport.NewHTTP(transport.HTTPOptions{URL: url})
		if err != nil {
			return nil, nil, err
		}
		return core.NewGoEthTransport(t), func() {}, nil
	case backendGeth:
		// Also supports IPC paths.
		c, err := rpc.DialContext(ctx, url)
		if err != nil {
			return nil, nil, err
		}
		t := core.NewGethTransport(c)
		return t, t.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q, use %s or %s", backend, backendGoEth, backendGeth)
	}
}
