package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ai_tutor_backend/internal/config"
	"ai_tutor_backend/pkg/logger"
	"ai_tutor_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CatalogService wraps the Coursera course catalog. Successful responses
// are cached in Redis; failures and empty results fall back to a static
// course list so browsing keeps working degraded.
type CatalogService struct {
	config config.CatalogConfig
	client *http.Client
	rdb    *redis.Client
}

func NewCatalogService(cfg config.CatalogConfig, rdb *redis.Client) *CatalogService {
	return &CatalogService{
		config: cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		rdb:    rdb,
	}
}

type Course struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	URL         string `json:"url,omitempty"`
}

type catalogResponse struct {
	Elements []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Slug        string `json:"slug"`
	} `json:"elements"`
}

func (s *CatalogService) fetchRemote(subject string) ([]Course, error) {
	params := url.Values{}
	params.Set("q", "search")
	if subject != "" {
		params.Set("query", subject)
	}
	params.Set("fields", "name,description,slug")

	resp, err := s.client.Get(s.config.BaseURL + "/api/courses.v1?" + params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog API error (status %d)", resp.StatusCode)
	}

	var result catalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	courses := make([]Course, 0, len(result.Elements))
	for _, e := range result.Elements {
		courses = append(courses, Course{
			Name:        e.Name,
			Description: e.Description,
			Difficulty:  "beginner",
			URL:         "https://www.coursera.org/learn/" + e.Slug,
		})
	}
	return courses, nil
}

// FetchCourses returns catalog courses for a subject, serving from the
// Redis cache when possible and from the sample list when the remote
// call fails or comes back empty.
func (s *CatalogService) FetchCourses(ctx context.Context, subject string) []Course {
	cacheKey := "catalog:" + strings.ToLower(strings.TrimSpace(subject))

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var courses []Course
			if json.Unmarshal([]byte(cached), &courses) == nil && len(courses) > 0 {
				return courses
			}
		}
	}

	courses, err := s.fetchRemote(subject)
	if err != nil || len(courses) == 0 {
		if err != nil {
			monitoring.UpstreamFailures.WithLabelValues("catalog").Inc()
			logger.Log.Warn("catalog fetch failed, serving fallback", zap.Error(err))
		}
		return FallbackCourses(subject)
	}

	if s.rdb != nil {
		if data, err := json.Marshal(courses); err == nil {
			ttl := time.Duration(s.config.CacheTTL) * time.Minute
			s.rdb.Set(ctx, cacheKey, data, ttl)
		}
	}

	return courses
}

// FallbackCourses filters the static sample list by subject; an empty or
// unmatched subject returns the whole list.
func FallbackCourses(subject string) []Course {
	sample := []Course{
		{Name: "Python for Everybody", Description: "Programming fundamentals with Python.", Difficulty: "beginner"},
		{Name: "HTML, CSS, and Javascript for Web Developers", Description: "Build responsive websites from scratch.", Difficulty: "beginner"},
		{Name: "Algorithms, Part I", Description: "Essential algorithms and data structures.", Difficulty: "intermediate"},
		{Name: "Machine Learning", Description: "Supervised learning, best practices, and applications.", Difficulty: "advanced"},
		{Name: "Introduction to Mathematical Thinking", Description: "Develop the mindset behind modern mathematics.", Difficulty: "intermediate"},
	}

	if subject == "" {
		return sample
	}

	lowered := strings.ToLower(subject)
	var filtered []Course
	for _, c := range sample {
		if strings.Contains(strings.ToLower(c.Name), lowered) ||
			strings.Contains(strings.ToLower(c.Description), lowered) {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		return sample
	}
	return filtered
}
