package observers

import (
	"context"
	"errors"
	"testing"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components/tool"
	"github.com/stretchr/testify/assert"
)

type ctxKey struct{}

func TestToolHandler_PassesContextThrough(t *testing.T) {
	h := newToolHandler()
	ctx := context.WithValue(context.Background(), ctxKey{}, "v")
	info := &einocb.RunInfo{Name: "add_to_cart"}

	assert.Equal(t, ctx, h.OnStart(ctx, info, &tool.CallbackInput{ArgumentsInJSON: `{"product_id":1}`}))
	assert.Equal(t, ctx, h.OnEnd(ctx, info, &tool.CallbackOutput{Response: `{"total":"1.00"}`}))
	assert.Equal(t, ctx, h.OnError(ctx, info, errors.New("boom")))
}

func TestNewToolCallbacks(t *testing.T) {
	assert.NotNil(t, NewToolCallbacks())
}
