package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vehicle-Shield/storefront/internal/cart/model"
	"github.com/Vehicle-Shield/storefront/internal/cart/repo"
	"github.com/Vehicle-Shield/storefront/internal/cart/store"
	"github.com/Vehicle-Shield/storefront/internal/catalog"
)

type fixture struct {
	store      *store.Store
	manager    *Manager
	dispatcher *Dispatcher
}

func newFixture(t *testing.T, lang model.Language) *fixture {
	t.Helper()
	ctx := context.Background()
	s := store.New(ctx, repo.NewPersistence(repo.NewMemoryStorage(), "cart"))
	m := NewManager(s, catalog.Default(), lang)
	d, err := NewDispatcher(ctx, m.Tools())
	require.NoError(t, err)
	return &fixture{store: s, manager: m, dispatcher: d}
}

func (f *fixture) call(t *testing.T, name string, args any) schema.ToolCall {
	t.Helper()
	c, err := f.dispatcher.Call(name, args)
	require.NoError(t, err)
	return c
}

func decodeCart(t *testing.T, msg *schema.Message) CartView {
	t.Helper()
	var view CartView
	require.NoError(t, json.Unmarshal([]byte(msg.Content), &view), msg.Content)
	return view
}

func TestManager_ToolInfos(t *testing.T) {
	f := newFixture(t, model.English)
	infos, err := f.manager.ToolInfos(context.Background())
	require.NoError(t, err)

	var names []string
	for _, info := range infos {
		names = append(names, info.Name)
	}
	assert.Equal(t, []string{"search_services", "add_to_cart", "remove_from_cart", "update_cart_quantity", "clear_cart", "view_cart"}, names)
}

func TestDispatch_AddSameServiceTwice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, model.English)

	out, err := f.dispatcher.Dispatch(ctx,
		f.call(t, "add_to_cart", AddToCartInput{ProductID: 3}),
		f.call(t, "add_to_cart", AddToCartInput{ProductID: 3, Quantity: 2}),
	)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "call_1", out[0].ToolCallID)
	assert.Equal(t, "call_2", out[1].ToolCallID)

	view := decodeCart(t, out[1])
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, "Ceramic Coating 9H", view.Items[0].Name)
	assert.Equal(t, "5550.00", view.Total)
	assert.Equal(t, 3, view.ItemCount)
	assert.Equal(t, 3, f.store.ItemCount())
}

func TestDispatch_CallsApplyInOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, model.English)

	out, err := f.dispatcher.Dispatch(ctx,
		f.call(t, "add_to_cart", AddToCartInput{ProductID: 1}),
		f.call(t, "add_to_cart", AddToCartInput{ProductID: 5, Quantity: 2}),
		f.call(t, "update_cart_quantity", UpdateCartQuantityInput{ProductID: 1, Quantity: 0}),
		f.call(t, "remove_from_cart", RemoveFromCartInput{ProductID: 99}),
		f.call(t, "view_cart", nil),
	)
	require.NoError(t, err)
	require.Len(t, out, 5)

	view := decodeCart(t, out[4])
	require.Len(t, view.Items, 1)
	assert.Equal(t, int64(5), view.Items[0].ProductID)
	assert.Equal(t, "2400.00", view.Total)
	assert.Equal(t, "2400.00", view.Items[0].Subtotal)
}

func TestDispatch_ClearCart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, model.English)

	out, err := f.dispatcher.Dispatch(ctx,
		f.call(t, "add_to_cart", AddToCartInput{ProductID: 2}),
		f.call(t, "clear_cart", nil),
	)
	require.NoError(t, err)

	view := decodeCart(t, out[1])
	assert.Empty(t, view.Items)
	assert.Equal(t, "0.00", view.Total)
	assert.Equal(t, 0, view.ItemCount)
	assert.True(t, f.store.State().IsEmpty())
}

func TestDispatch_ArabicNames(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, model.Arabic)

	out, err := f.dispatcher.Dispatch(ctx, f.call(t, "add_to_cart", AddToCartInput{ProductID: 5}))
	require.NoError(t, err)
	assert.Equal(t, "تظليل نانو سيراميك", decodeCart(t, out[0]).Items[0].Name)
}

func TestDispatch_RejectsInvalidAdds(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		in   AddToCartInput
	}{
		{name: "unknown product", in: AddToCartInput{ProductID: 404}},
		{name: "unavailable product", in: AddToCartInput{ProductID: 6}},
		{name: "over stock", in: AddToCartInput{ProductID: 7, Quantity: 4}},
		{name: "negative quantity", in: AddToCartInput{ProductID: 3, Quantity: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, model.English)
			_, err := f.dispatcher.Dispatch(ctx, f.call(t, "add_to_cart", tt.in))
			assert.Error(t, err)
			assert.True(t, f.store.State().IsEmpty())
		})
	}
}

func TestDispatch_StockCountsExistingLine(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, model.English)

	_, err := f.dispatcher.Dispatch(ctx, f.call(t, "add_to_cart", AddToCartInput{ProductID: 7, Quantity: 3}))
	require.NoError(t, err)

	_, err = f.dispatcher.Dispatch(ctx, f.call(t, "add_to_cart", AddToCartInput{ProductID: 7}))
	assert.Error(t, err)
	assert.Equal(t, 3, f.store.ItemCount())

	_, err = f.dispatcher.Dispatch(ctx, f.call(t, "update_cart_quantity", UpdateCartQuantityInput{ProductID: 7, Quantity: 5}))
	assert.Error(t, err)
	assert.Equal(t, 3, f.store.ItemCount())
}

func TestDispatch_NoCalls(t *testing.T) {
	f := newFixture(t, model.English)
	out, err := f.dispatcher.Dispatch(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, out)
}

func TestSearchServicesTool(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, model.English)

	search, ok := f.manager.Tools()[0].(tool.InvokableTool)
	require.True(t, ok)

	resp, err := search.InvokableRun(ctx, `{"query":"ceramic","category_id":2}`)
	require.NoError(t, err)

	var out SearchServicesOutput
	require.NoError(t, json.Unmarshal([]byte(resp), &out))
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, int64(3), out.Services[0].ID)
	assert.True(t, out.Services[0].InStock)
	assert.True(t, out.Services[0].Featured)
}
