package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"lfg-backend/internal/config"
	apperrors "lfg-backend/internal/errors"
	"lfg-backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

const reputationService = "reputation"

// RaiderIOClient reads mythic+ scores from the Raider.IO public API
type RaiderIOClient struct {
	baseURL    string
	region     string
	httpClient *http.Client
}

// NewRaiderIOClient creates a new Raider.IO client
func NewRaiderIOClient(cfg *config.Config) *RaiderIOClient {
	return &RaiderIOClient{
		baseURL:    strings.TrimRight(cfg.ReputationBaseURL, "/"),
		region:     cfg.ReputationRegion,
		httpClient: &http.Client{Timeout: cfg.ReputationTimeout()},
	}
}

// raiderIOProfileResponse is the subset of the character profile we read
type raiderIOProfileResponse struct {
	Seasons []struct {
		Season string `json:"season"`
		Scores struct {
			All float64 `json:"all"`
		} `json:"scores"`
	} `json:"mythic_plus_scores_by_season"`
}

// GetScore returns the current-season overall score of a character.
// Every failure, including a timeout, is reported as an UnavailableError.
func (c *RaiderIOClient) GetScore(ctx context.Context, name, realm string) (int, error) {
	q := url.Values{}
	q.Set("region", c.region)
	q.Set("realm", realm)
	q.Set("name", name)
	q.Set("fields", "mythic_plus_scores_by_season:current")
	fullURL := c.baseURL + "/api/v1/characters/profile?" + q.Encode()

	logger.WithContext(ctx).Debugf("Invoking Raider.IO API GET %s", fullURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return 0, apperrors.NewUnavailableError(reputationService, fmt.Errorf("failed to create HTTP request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, apperrors.NewUnavailableError(reputationService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, apperrors.NewUnavailableError(reputationService,
			fmt.Errorf("raider.io request failed: status=%d body=%s", resp.StatusCode, string(body)))
	}

	var profile raiderIOProfileResponse
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return 0, apperrors.NewUnavailableError(reputationService, fmt.Errorf("failed to decode raider.io response: %w", err))
	}
	if len(profile.Seasons) == 0 {
		return 0, apperrors.NewUnavailableError(reputationService, errors.New("raider.io response has no season scores"))
	}
	return int(profile.Seasons[0].Scores.All), nil
}

// CachedReputationClient serves scores from a ScoreCache before asking the
// wrapped client. Cache failures never fail a lookup.
type CachedReputationClient struct {
	next  ReputationClient
	cache ScoreCache
	ttl   time.Duration
}

// NewCachedReputationClient wraps next with cache
func NewCachedReputationClient(next ReputationClient, cache ScoreCache, ttl time.Duration) *CachedReputationClient {
	return &CachedReputationClient{next: next, cache: cache, ttl: ttl}
}

// GetScore returns the cached score or fetches and caches a fresh one
func (c *CachedReputationClient) GetScore(ctx context.Context, name, realm string) (int, error) {
	key := scoreCacheKey(name, realm)
	log := logger.WithContext(ctx).WithField("cache_key", key)

	score, found, err := c.cache.Get(ctx, key)
	if err != nil {
		log.WithError(err).Warn("score cache read failed")
	} else if found {
		return score, nil
	}

	score, err = c.next.GetScore(ctx, name, realm)
	if err != nil {
		return 0, err
	}
	if err := c.cache.Set(ctx, key, score, c.ttl); err != nil {
		log.WithError(err).Warn("score cache write failed")
	}
	return score, nil
}

// RefreshScore skips the cache read, fetches a fresh score and stores it
func (c *CachedReputationClient) RefreshScore(ctx context.Context, name, realm string) (int, error) {
	score, err := c.next.GetScore(ctx, name, realm)
	if err != nil {
		return 0, err
	}
	if err := c.cache.Set(ctx, scoreCacheKey(name, realm), score, c.ttl); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("score cache write failed")
	}
	return score, nil
}

func scoreCacheKey(name, realm string) string {
	return fmt.Sprintf("reputation_score:%s:%s", strings.ToLower(realm), strings.ToLower(name))
}

// RedisScoreCache is a ScoreCache backed by Redis
type RedisScoreCache struct {
	redis *redis.Client
}

// NewRedisScoreCache creates a new Redis score cache
func NewRedisScoreCache(client *redis.Client) *RedisScoreCache {
	return &RedisScoreCache{redis: client}
}

// Get returns the cached score; a missing key is not an error
func (c *RedisScoreCache) Get(ctx context.Context, key string) (int, bool, error) {
	val, err := c.redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	score, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("invalid cached score %q: %w", val, err)
	}
	return score, true, nil
}

// Set stores a score with a TTL
func (c *RedisScoreCache) Set(ctx context.Context, key string, score int, ttl time.Duration) error {
	return c.redis.Set(ctx, key, strconv.Itoa(score), ttl).Err()
}
