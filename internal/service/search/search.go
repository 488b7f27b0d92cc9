package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"
)

// Suggest queries the product index for names starting with the typed
// prefix and returns the distinct names, most relevant first.
func Suggest(ctx context.Context, es *elasticsearch.Client, index, query string, limit int) ([]string, error) {
	body := map[string]any{
		"query": map[string]any{
			"match_phrase_prefix": map[string]any{
				"name": query,
			},
		},
		"_source": []string{"name"},
		"size":    limit,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("suggest: encode query: %w", err)
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("suggest: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source struct {
					Name string `json:"name"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(r.Hits.Hits))
	names := make([]string, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		if hit.Source.Name == "" || seen[hit.Source.Name] {
			continue
		}
		seen[hit.Source.Name] = true
		names = append(names, hit.Source.Name)
	}
	return names, nil
}
