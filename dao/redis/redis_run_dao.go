package redis

import (
    "encoding/json"
    "fmt"
    "log"
    "strings"

    "hostelwatch/db"
    "hostelwatch/models"
)

const SCRAPE_RUN_KEY_FORMAT_V1 = "scrape_run_v1:%s"
const LATEST_RUN_ID = "latest"

// RedisRunDAO caches scrape runs in Redis so dashboard reads do not trigger
// a re-scrape. The latest run lives under a fixed id.
type RedisRunDAO struct {
    client db.RedisClient
}

// NewRedisRunDAO initializes a RedisRunDAO with the Redis client.
func NewRedisRunDAO(client db.RedisClient) *RedisRunDAO {
    return &RedisRunDAO{client: client}
}

// SetLatestRun stores the run as the latest one.
func (dao *RedisRunDAO) SetLatestRun(run *models.ScrapeRun) error {
    return dao.SetRun(LATEST_RUN_ID, run)
}

// GetLatestRun retrieves the latest stored run.
func (dao *RedisRunDAO) GetLatestRun() (*models.ScrapeRun, error) {
    return dao.GetRun(LATEST_RUN_ID)
}

// SetRun stores a run under the given id.
func (dao *RedisRunDAO) SetRun(id string, run *models.ScrapeRun) error {
    key := fmt.Sprintf(SCRAPE_RUN_KEY_FORMAT_V1, id)
    data, err := json.Marshal(run)
    if err != nil {
        return fmt.Errorf("failed to marshal scrape run %s: %w", id, err)
    }
    if err := dao.client.Set(key, string(data)); err != nil {
        return fmt.Errorf("failed to set scrape run in redis: %w", err)
    }
    return nil
}

// GetRun retrieves a stored run by id.
func (dao *RedisRunDAO) GetRun(id string) (*models.ScrapeRun, error) {
    key := fmt.Sprintf(SCRAPE_RUN_KEY_FORMAT_V1, id)
    str, err := dao.client.Get(key)
    if err != nil {
        return nil, fmt.Errorf("failed to get scrape run from redis: %w", err)
    }
    var run models.ScrapeRun
    if err := json.Unmarshal([]byte(str), &run); err != nil {
        return nil, fmt.Errorf("failed to unmarshal scrape run JSON: %w", err)
    }
    return &run, nil
}

// ListRunIDs returns the ids of all cached runs.
func (dao *RedisRunDAO) ListRunIDs() ([]string, error) {
    pattern := fmt.Sprintf(SCRAPE_RUN_KEY_FORMAT_V1, "*")
    keys, err := dao.client.Keys(pattern)
    if err != nil {
        return nil, fmt.Errorf("failed to list scrape run keys: %w", err)
    }
    prefix := fmt.Sprintf(SCRAPE_RUN_KEY_FORMAT_V1, "")
    ids := make([]string, 0, len(keys))
    for _, k := range keys {
        ids = append(ids, strings.TrimPrefix(k, prefix))
    }
    return ids, nil
}

// DeleteRun removes a cached run.
func (dao *RedisRunDAO) DeleteRun(id string) error {
    key := fmt.Sprintf(SCRAPE_RUN_KEY_FORMAT_V1, id)
    if err := dao.client.Del(key); err != nil {
        return fmt.Errorf("failed to delete scrape run key %s: %w", key, err)
    }
    log.Printf("[RedisRunDAO] Deleted cached scrape run %s", id)
    return nil
}
