package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"

	"github.com/Vehicle-Shield/storefront/internal/cart/model"
	"github.com/Vehicle-Shield/storefront/internal/cart/repo"
	"github.com/Vehicle-Shield/storefront/internal/cart/state"
	"github.com/Vehicle-Shield/storefront/internal/cart/store"
	"github.com/Vehicle-Shield/storefront/internal/cart/tools"
	"github.com/Vehicle-Shield/storefront/internal/catalog"
	"github.com/Vehicle-Shield/storefront/internal/core"
	logx "github.com/Vehicle-Shield/storefront/pkg/logger"
	pkgredis "github.com/Vehicle-Shield/storefront/pkg/redis"
)

// AppConfig defines all configurable parameters for the cart demo,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL"`
	Lang     string `envconfig:"DEMO_LANG" default:"ar"`

	// Infrastructure
	Redis pkgredis.Config

	Cart model.CartConfig
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		fmt.Printf("Warning: could not load .env file: %v\n", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logx.Fatal().Err(err).Msg("failed to process environment config")
	}

	logx.Init(logx.LoggerOpts{
		Environment: core.ParseEnvironment(cfg.Env),
		Level:       cfg.LogLevel,
	})

	if cfg.Cart.SessionID == "" {
		cfg.Cart.SessionID = uuid.NewString()
	}

	storage, closeStorage, err := openStorage(ctx, cfg)
	if err != nil {
		logx.Fatal().Err(err).Str("backend", cfg.Cart.Backend).Msg("failed to open cart storage")
	}
	defer closeStorage()

	cart := store.New(ctx, repo.NewPersistence(storage, cfg.Cart.StorageKey))
	unsubscribe := cart.Subscribe(func(st state.State) {
		logx.Info().
			Str("session", cfg.Cart.SessionID).
			Int("lines", st.Len()).
			Int("itemCount", st.ItemCount()).
			Str("total", st.Total().StringFixed(2)).
			Msg("cart changed")
	})
	defer unsubscribe()

	lang := model.ParseLanguage(cfg.Lang)
	manager := tools.NewManager(cart, catalog.Default(), lang)
	dispatcher, err := tools.NewDispatcher(ctx, manager.Tools())
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to build tool dispatcher")
	}

	fmt.Printf("Session %s restored with %d item(s), total %s\n",
		cfg.Cart.SessionID, cart.ItemCount(), cart.Total().StringFixed(2))

	type step struct {
		name string
		args any
	}
	scenarios := []struct {
		description string
		steps       []step
	}{
		{
			description: "Browse ceramic services",
			steps:       []step{{"search_services", tools.SearchServicesInput{Query: "ceramic"}}},
		},
		{
			description: "Add coating twice and a tint",
			steps: []step{
				{"add_to_cart", tools.AddToCartInput{ProductID: 3}},
				{"add_to_cart", tools.AddToCartInput{ProductID: 3, Quantity: 2}},
				{"add_to_cart", tools.AddToCartInput{ProductID: 5}},
			},
		},
		{
			description: "Drop the coating to one and remove the tint",
			steps: []step{
				{"update_cart_quantity", tools.UpdateCartQuantityInput{ProductID: 3, Quantity: 1}},
				{"remove_from_cart", tools.RemoveFromCartInput{ProductID: 5}},
			},
		},
		{
			description: "Review the cart",
			steps:       []step{{"view_cart", nil}},
		},
	}

	for i, sc := range scenarios {
		fmt.Printf("\nStep %d: %s\n", i+1, sc.description)

		calls := make([]schema.ToolCall, 0, len(sc.steps))
		for _, st := range sc.steps {
			call, err := dispatcher.Call(st.name, st.args)
			if err != nil {
				logx.Fatal().Err(err).Str("tool", st.name).Msg("failed to build tool call")
			}
			calls = append(calls, call)
		}

		out, err := dispatcher.Dispatch(ctx, calls...)
		if err != nil {
			logx.Error().Err(err).Int("step", i+1).Msg("step failed")
			continue
		}
		for j, msg := range out {
			fmt.Printf("  %s -> %s\n", sc.steps[j].name, msg.Content)
		}
	}

	final, err := json.MarshalIndent(cart.State(), "", "  ")
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to render cart")
	}
	fmt.Printf("\nFinal cart (persisted under %q):\n%s\n", cfg.Cart.StorageKey, final)
}

// openStorage picks the key-value backend the cart is mirrored to.
func openStorage(ctx context.Context, cfg AppConfig) (model.Storage, func(), error) {
	switch cfg.Cart.Backend {
	case model.BackendMemory:
		return repo.NewMemoryStorage(), func() {}, nil
	case model.BackendRedis:
		ttl, err := time.ParseDuration(cfg.Cart.TTL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid CART_TTL %q: %w", cfg.Cart.TTL, err)
		}
		rdb, err := cfg.Redis.New(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		logx.Info().Str("session", cfg.Cart.SessionID).Dur("ttl", ttl).Msg("connected to redis")
		return repo.NewRedisStorage(rdb, cfg.Cart.SessionID, ttl), closeRedis(rdb), nil
	default:
		return nil, nil, fmt.Errorf("unknown CART_STORAGE %q", cfg.Cart.Backend)
	}
}

func closeRedis(rdb *redis.Client) func() {
	return func() {
		if err := rdb.Close(); err != nil {
			logx.Warn().Err(err).Msg("failed to close redis client")
		}
	}
}
