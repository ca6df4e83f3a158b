package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Vehicle-Shield/storefront/internal/cart/model"
	errx "github.com/Vehicle-Shield/storefront/internal/core/error"
	logx "github.com/Vehicle-Shield/storefront/pkg/logger"
)

// DefaultKey is the storage slot the cart is mirrored to.
const DefaultKey = "cart"

// Persistence mirrors the cart's lines to a single storage key as a JSON array.
// Neither Save nor Load return errors: failures are logged and the cart
// carries on from memory.
type Persistence struct {
	storage model.Storage
	key     string
}

func NewPersistence(storage model.Storage, key string) *Persistence {
	if key == "" {
		key = DefaultKey
	}
	return &Persistence{storage: storage, key: key}
}

func (p *Persistence) Key() string {
	return p.key
}

// Save rewrites the whole array under the key.
func (p *Persistence) Save(ctx context.Context, items []model.Line) {
	raw, err := Encode(items)
	if err != nil {
		logx.Error().Err(err).Str("key", p.key).Msg("failed to encode cart")
		return
	}
	if err := p.storage.Set(ctx, p.key, raw); err != nil {
		logx.Error().Err(err).Str("key", p.key).Int("lines", len(items)).Msg("failed to save cart")
		return
	}
	logx.Debug().Str("key", p.key).Int("lines", len(items)).Msg("cart saved")
}

// Load returns the stored lines, or an empty slice when the key is absent,
// unreadable or corrupt.
func (p *Persistence) Load(ctx context.Context) []model.Line {
	raw, found, err := p.storage.Get(ctx, p.key)
	if err != nil {
		logx.Error().Err(err).Str("key", p.key).Msg("failed to read stored cart, starting empty")
		return []model.Line{}
	}
	if !found {
		return []model.Line{}
	}

	items, err := Decode(p.key, raw)
	if err != nil {
		logx.Warn().Err(err).Str("key", p.key).Msg("discarding corrupt stored cart")
		return []model.Line{}
	}
	return items
}

// Encode renders lines as the stored JSON array. A nil slice encodes as [].
func Encode(items []model.Line) (string, error) {
	if items == nil {
		items = []model.Line{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("marshal cart: %w", err)
	}
	return string(b), nil
}

// Decode parses a stored value. Anything that is not a JSON array of lines
// yields an error matching errx.ErrPersistenceCorruption.
func Decode(key, raw string) ([]model.Line, error) {
	var items []model.Line
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, errx.WrapCorruption(err, key)
	}
	if items == nil {
		// "null" decodes without error but is not an array
		return nil, errx.WrapCorruption(fmt.Errorf("stored value is %s, want array", raw), key)
	}
	return items, nil
}
