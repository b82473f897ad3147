package service

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"encoding/json"

	"ai_tutor_backend/internal/config"
)

// VideoService wraps a YouTube Data API compatible search endpoint.
type VideoService struct {
	config config.VideoConfig
	client *http.Client
}

func NewVideoService(cfg config.VideoConfig) *VideoService {
	return &VideoService{
		config: cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type VideoSuggestion struct {
	Title   string `json:"title"`
	VideoID string `json:"videoId"`
}

type videoSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

func (s *VideoService) search(query string, maxResults int) ([]VideoSuggestion, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("q", query)
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))
	params.Set("key", s.config.APIKey)

	resp, err := s.client.Get(s.config.BaseURL + "/search?" + params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("video API error (status %d)", resp.StatusCode)
	}

	var result videoSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	out := make([]VideoSuggestion, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.VideoID == "" {
			continue
		}
		out = append(out, VideoSuggestion{
			Title:   item.Snippet.Title,
			VideoID: item.ID.VideoID,
		})
	}
	return out, nil
}

// SearchEducational combines a concept-specific query with a
// topic-generic one, deduplicates by video id with the concept-specific
// results first, and caps the list at 3.
func (s *VideoService) SearchEducational(concept, subject string) ([]VideoSuggestion, error) {
	specific, err := s.search(concept+" explained", 3)
	if err != nil {
		return nil, err
	}

	generic, err := s.search(subject+" tutorial", 3)
	if err != nil {
		// the concept query already succeeded; return what we have
		generic = nil
	}

	return MergeVideoSuggestions(specific, generic, 3), nil
}

// MergeVideoSuggestions deduplicates by video id, keeping the order of
// the primary list before the secondary, capped at max entries.
func MergeVideoSuggestions(primary, secondary []VideoSuggestion, max int) []VideoSuggestion {
	seen := make(map[string]bool, len(primary)+len(secondary))
	out := make([]VideoSuggestion, 0, max)
	for _, v := range append(append([]VideoSuggestion{}, primary...), secondary...) {
		if seen[v.VideoID] {
			continue
		}
		seen[v.VideoID] = true
		out = append(out, v)
		if len(out) == max {
			break
		}
	}
	return out
}
