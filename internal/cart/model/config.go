package model

// ================ Config ================
type CartConfig struct {
	StorageKey string `envconfig:"CART_STORAGE_KEY" default:"cart"`
	Backend    string `envconfig:"CART_STORAGE" default:"redis"`
	TTL        string `envconfig:"CART_TTL" default:"720h"`
	SessionID  string `envconfig:"CART_SESSION_ID"`
}

const (
	BackendRedis  = "redis"
	BackendMemory = "memory"
)
