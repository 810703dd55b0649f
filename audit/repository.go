// console/audit/repository.go
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
)

const defaultQuerySize = 100

type Repository interface {
	LogActivity(ctx context.Context, activity Activity) error
	QueryActivities(ctx context.Context, q ActivityQuery) ([]Activity, error)
}

type ElasticsearchRepository struct {
	esClient *elasticsearch.Client
	index    string
}

// NewElasticsearchRepository creates a repository writing to index on the
// cluster at esURL.
func NewElasticsearchRepository(esURL, index string) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{esURL},
	}
	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &ElasticsearchRepository{esClient: esClient, index: index}, nil
}

func (r *ElasticsearchRepository) LogActivity(ctx context.Context, activity Activity) error {
	data, err := json.Marshal(activity)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: uuid.New().String(),
		Body:       bytes.NewReader(data),
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing activity: %s", res.String())
	}
	return nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source Activity `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (r *ElasticsearchRepository) QueryActivities(ctx context.Context, q ActivityQuery) ([]Activity, error) {
	must := []map[string]interface{}{
		{"range": map[string]interface{}{
			"timestamp": map[string]interface{}{
				"gte": q.From.Format(time.RFC3339),
				"lte": q.To.Format(time.RFC3339),
			},
		}},
	}
	if q.Username != "" {
		must = append(must, map[string]interface{}{"match": map[string]interface{}{"username": q.Username}})
	}
	if q.ResourceType != "" {
		must = append(must, map[string]interface{}{"match": map[string]interface{}{"resource_type": q.ResourceType}})
	}
	size := q.Size
	if size <= 0 {
		size = defaultQuerySize
	}
	body := map[string]interface{}{
		"query": map[string]interface{}{"bool": map[string]interface{}{"must": must}},
		"sort":  []map[string]interface{}{{"timestamp": map[string]string{"order": "desc"}}},
		"size":  size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	res, err := r.esClient.Search(
		r.esClient.Search.WithContext(ctx),
		r.esClient.Search.WithIndex(r.index),
		r.esClient.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching activities: %s", res.String())
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	activities := make([]Activity, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		activities = append(activities, hit.Source)
	}
	return activities, nil
}

// LogRepository writes activities to the application log and keeps the most
// recent ones in memory so they can still be queried.
type LogRepository struct {
	mu     sync.Mutex
	recent []Activity
	limit  int
}

func NewLogRepository(limit int) *LogRepository {
	if limit <= 0 {
		limit = 500
	}
	return &LogRepository{limit: limit}
}

func (r *LogRepository) LogActivity(ctx context.Context, activity Activity) error {
	logger.Info("Activity",
		zap.String("username", activity.Username),
		zap.String("action", activity.Action),
		zap.String("resourceType", activity.ResourceType),
		zap.String("resourceID", activity.ResourceID),
		zap.Int("status", activity.Status),
		zap.Bool("success", activity.Success))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.recent = append(r.recent, activity)
	if len(r.recent) > r.limit {
		r.recent = r.recent[len(r.recent)-r.limit:]
	}
	return nil
}

// QueryActivities returns matches newest first.
func (r *LogRepository) QueryActivities(ctx context.Context, q ActivityQuery) ([]Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := q.Size
	if size <= 0 {
		size = defaultQuerySize
	}
	var out []Activity
	for i := len(r.recent) - 1; i >= 0 && len(out) < size; i-- {
		a := r.recent[i]
		if a.Timestamp.Before(q.From) || a.Timestamp.After(q.To) {
			continue
		}
		if q.Username != "" && a.Username != q.Username {
			continue
		}
		if q.ResourceType != "" && a.ResourceType != q.ResourceType {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}
