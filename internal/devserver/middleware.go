package devserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyHeader = "Idempotency-Key"
	idempotencyPrefix = "idempotency:"
	idempotencyTTL    = 24 * time.Hour
)

// CORSMiddleware allows the dashboard frontend to call the fixture server
// from another origin during development.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, "+idempotencyHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// AuthMiddleware validates the bearer token and stores its claims in the
// context. Missing or invalid tokens are rejected with 401.
func AuthMiddleware(jwts *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}

		claims, err := jwts.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// mustClaims returns the claims AuthMiddleware stored. Routes calling it are
// always mounted behind the middleware.
func mustClaims(c *gin.Context) *Claims {
	v, _ := c.Get("claims")
	claims, _ := v.(*Claims)
	return claims
}

// IdempotencyCache stores responses to replayed mutating requests.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) (*cachedResponse, error)
	Set(ctx context.Context, key string, resp *cachedResponse) error
}

// cachedResponse stores the response for idempotent requests.
type cachedResponse struct {
	StatusCode int             `json:"status_code"`
	Body       json.RawMessage `json:"body"`
}

// RedisIdempotencyCache backs the idempotency middleware with Redis.
type RedisIdempotencyCache struct {
	client *redis.Client
}

// NewRedisIdempotencyCache creates a Redis-backed idempotency cache.
func NewRedisIdempotencyCache(client *redis.Client) *RedisIdempotencyCache {
	return &RedisIdempotencyCache{client: client}
}

func (c *RedisIdempotencyCache) Get(ctx context.Context, key string) (*cachedResponse, error) {
	data, err := c.client.Get(ctx, idempotencyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var resp cachedResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RedisIdempotencyCache) Set(ctx context.Context, key string, resp *cachedResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, idempotencyPrefix+key, data, idempotencyTTL).Err()
}

// MemoryIdempotencyCache backs the idempotency middleware with process memory.
type MemoryIdempotencyCache struct {
	mu      sync.Mutex
	entries map[string]*cachedResponse
}

// NewMemoryIdempotencyCache creates an in-memory idempotency cache.
func NewMemoryIdempotencyCache() *MemoryIdempotencyCache {
	return &MemoryIdempotencyCache{entries: make(map[string]*cachedResponse)}
}

func (c *MemoryIdempotencyCache) Get(ctx context.Context, key string) (*cachedResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key], nil
}

func (c *MemoryIdempotencyCache) Set(ctx context.Context, key string, resp *cachedResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = resp
	return nil
}

// captureWriter wraps gin.ResponseWriter to capture the response body.
type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the stored response for repeated mutating
// requests carrying the same Idempotency-Key. Cache failures fall through to
// normal handling.
func IdempotencyMiddleware(cache IdempotencyCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut && c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		key := c.GetHeader(idempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cached, err := cache.Get(ctx, key)
		if err == nil && cached != nil {
			c.Data(cached.StatusCode, "application/json", cached.Body)
			c.Abort()
			return
		}

		w := &captureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = w
		c.Next()

		if w.Status() >= 200 && w.Status() < 300 {
			_ = cache.Set(ctx, key, &cachedResponse{
				StatusCode: w.Status(),
				Body:       json.RawMessage(w.body.Bytes()),
			})
		}
	}
}
