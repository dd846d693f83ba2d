package core

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/defiweb/go-eth/rpc/transport"
	"github.com/ethereum/go-ethereum/rpc"
)

// Transport performs a single JSON-RPC call and decodes the `result` field
// into result. A response without a result must decode as JSON null.
type Transport interface {
	Call(ctx context.Context, result any, method string, args ...any) error
}

// GoEthTransport adapts a go-eth transport (HTTP, WebSocket, IPC) to Transport.
type GoEthTransport struct {
	transport transport.Transport
}

func NewGoEthTransport(t transport.Transport) *GoEthTransport {
	return &GoEthTransport{transport: t}
}

// Call decodes the result through a json.RawMessage. go-eth unmarshals the
// result field of an already parsed envelope, so the only way decoding into a
// RawMessage fails is an empty (missing) result, which becomes null.
func (g *GoEthTransport) Call(ctx context.Context, result any, method string, args ...any) error {
	var raw json.RawMessage
	err := g.transport.Call(ctx, &raw, method, args...)
	if err != nil && !isMissingResult(err) {
		return err
	}
	if len(raw) == 0 {
		raw = json.RawMessage("null")
	}
	return json.Unmarshal(raw, result)
}

func isMissingResult(err error) bool {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Offset == 0
	}
	return strings.HasSuffix(err.Error(), "unexpected end of JSON input")
}

// GethTransport adapts a go-ethereum RPC client to Transport.
type GethTransport struct {
	client *rpc.Client
}

func NewGethTransport(client *rpc.Client) *GethTransport {
	return &GethTransport{client: client}
}

// Call forwards to the go-ethereum client. A response without a result field
// leaves result untouched, so it is later reported as a null result rather
// than a transport failure.
func (g *GethTransport) Call(ctx context.Context, result any, method string, args ...any) error {
	err := g.client.CallContext(ctx, result, method, args...)
	if errors.Is(err, rpc.ErrNoResult) {
		return nil
	}
	return err
}

func (g *GethTransport) Close() {
	g.client.Close()
}
