package batch

import (
	"errors"
	"fmt"

	"Airframe/internal/calc/recommend"
)

const MaxItems = 500

var (
	ErrNoItems      = errors.New("no items")
	ErrTooManyItems = fmt.Errorf("more than %d items", MaxItems)
)

type RecommendBatchInput struct {
	Items []recommend.Input `json:"items"`
}

type Item struct {
	Input  recommend.Input  `json:"input"`
	Result recommend.Result `json:"result"`
}

type RecommendBatchResult struct {
	Count     int    `json:"count"`
	Warnings  int    `json:"warnings"`
	Available int    `json:"available"`
	Results   []Item `json:"results"`
}

// Recommend runs every item through recommend.Recommend. One out of bounds item fails the batch.
func Recommend(in RecommendBatchInput) (RecommendBatchResult, error) {
	if len(in.Items) == 0 {
		return RecommendBatchResult{}, ErrNoItems
	}
	if len(in.Items) > MaxItems {
		return RecommendBatchResult{}, ErrTooManyItems
	}
	out := RecommendBatchResult{Results: make([]Item, 0, len(in.Items))}
	for i, item := range in.Items {
		if err := item.Validate(); err != nil {
			return RecommendBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		res := recommend.Recommend(item)
		out.Results = append(out.Results, Item{Input: item, Result: res})
		if res.Available {
			out.Available++
		}
		if res.Warning != "" {
			out.Warnings++
		}
	}
	out.Count = len(out.Results)
	return out, nil
}
