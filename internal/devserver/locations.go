package devserver

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

const riderLocationKey = "riders:locations"

// RiderPosition is a rider's simulated position.
type RiderPosition struct {
	RiderID string
	Lat     float64
	Lng     float64
}

// LocationStore holds the live rider positions the active-riders endpoint
// serves. The redis implementation mirrors a production GEO index; the memory
// implementation keeps `REDIS_ENABLED=false` runs dependency-free.
type LocationStore interface {
	UpdateLocation(ctx context.Context, riderID string, lat, lng float64) error
	GetLocation(ctx context.Context, riderID string) (*RiderPosition, error)
	RemoveLocation(ctx context.Context, riderID string) error
}

// RedisLocationStore keeps rider positions in a Redis GEO index.
type RedisLocationStore struct {
	client *redis.Client
}

// NewRedisLocationStore creates a Redis-backed location store.
func NewRedisLocationStore(client *redis.Client) *RedisLocationStore {
	return &RedisLocationStore{client: client}
}

// UpdateLocation stores a rider's position using GEOADD.
func (s *RedisLocationStore) UpdateLocation(ctx context.Context, riderID string, lat, lng float64) error {
	return s.client.GeoAdd(ctx, riderLocationKey, &redis.GeoLocation{
		Name:      riderID,
		Longitude: lng,
		Latitude:  lat,
	}).Err()
}

// GetLocation reads a rider's position back from the GEO index.
func (s *RedisLocationStore) GetLocation(ctx context.Context, riderID string) (*RiderPosition, error) {
	positions, err := s.client.GeoPos(ctx, riderLocationKey, riderID).Result()
	if err != nil {
		return nil, err
	}
	if len(positions) == 0 || positions[0] == nil {
		return nil, nil
	}
	return &RiderPosition{
		RiderID: riderID,
		Lat:     positions[0].Latitude,
		Lng:     positions[0].Longitude,
	}, nil
}

// RemoveLocation removes a rider from the GEO index.
func (s *RedisLocationStore) RemoveLocation(ctx context.Context, riderID string) error {
	return s.client.ZRem(ctx, riderLocationKey, riderID).Err()
}

// MemoryLocationStore keeps rider positions in process memory.
type MemoryLocationStore struct {
	mu        sync.RWMutex
	positions map[string]RiderPosition
}

// NewMemoryLocationStore creates an in-memory location store.
func NewMemoryLocationStore() *MemoryLocationStore {
	return &MemoryLocationStore{positions: make(map[string]RiderPosition)}
}

func (s *MemoryLocationStore) UpdateLocation(ctx context.Context, riderID string, lat, lng float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.positions[riderID] = RiderPosition{RiderID: riderID, Lat: lat, Lng: lng}
	return nil
}

func (s *MemoryLocationStore) GetLocation(ctx context.Context, riderID string) (*RiderPosition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.positions[riderID]
	if !ok {
		return nil, nil
	}
	return &pos, nil
}

func (s *MemoryLocationStore) RemoveLocation(ctx context.Context, riderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.positions, riderID)
	return nil
}

// Ensure concrete types implement the interface.
var (
	_ LocationStore = (*RedisLocationStore)(nil)
	_ LocationStore = (*MemoryLocationStore)(nil)
)
