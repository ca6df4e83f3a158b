package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/Vehicle-Shield/storefront/internal/cart/observers"
	logx "github.com/Vehicle-Shield/storefront/pkg/logger"
)

// Dispatcher runs the tool calls of an assistant message through an Eino
// tools node, one call after another, so cart mutations apply in call order.
type Dispatcher struct {
	runnable compose.Runnable[*schema.Message, []*schema.Message]
	seq      atomic.Int64
}

func NewDispatcher(ctx context.Context, tools []tool.BaseTool) (*Dispatcher, error) {
	node, err := compose.NewToolNode(ctx, &compose.ToolsNodeConfig{
		Tools:               tools,
		ExecuteSequentially: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create tools node: %w", err)
	}

	chain := compose.NewChain[*schema.Message, []*schema.Message]()
	chain.AppendToolsNode(node, compose.WithNodeName("cart_tools"))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("compile tools chain: %w", err)
	}
	return &Dispatcher{runnable: runnable}, nil
}

// Call builds a tool call with JSON-encoded args and a locally unique id.
func (d *Dispatcher) Call(name string, args any) (schema.ToolCall, error) {
	if args == nil {
		args = struct{}{}
	}
	b, err := json.Marshal(args)
	if err != nil {
		return schema.ToolCall{}, fmt.Errorf("marshal %s args: %w", name, err)
	}
	return schema.ToolCall{
		ID:       fmt.Sprintf("call_%d", d.seq.Add(1)),
		Type:     "function",
		Function: schema.FunctionCall{Name: name, Arguments: string(b)},
	}, nil
}

// Dispatch executes calls in order and returns one tool message per call.
func (d *Dispatcher) Dispatch(ctx context.Context, calls ...schema.ToolCall) ([]*schema.Message, error) {
	if len(calls) == 0 {
		return nil, nil
	}
	out, err := d.runnable.Invoke(ctx, schema.AssistantMessage("", calls),
		compose.WithCallbacks(observers.NewToolCallbacks()))
	if err != nil {
		logx.Error().Err(err).Int("calls", len(calls)).Msg("tool dispatch failed")
		return nil, err
	}
	return out, nil
}
