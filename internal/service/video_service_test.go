package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"ai_tutor_backend/internal/config"
)

func videoItem(id, title string) map[string]interface{} {
	return map[string]interface{}{
		"id":      map[string]string{"videoId": id},
		"snippet": map[string]string{"title": title},
	}
}

func TestSearchEducationalMergesQueries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var items []map[string]interface{}
		switch q := r.URL.Query().Get("q"); q {
		case "recursion explained":
			items = []map[string]interface{}{
				videoItem("v1", "Recursion Explained"),
				videoItem("v2", "Recursion in 5 Minutes"),
			}
		case "python tutorial":
			items = []map[string]interface{}{
				videoItem("v2", "Recursion in 5 Minutes"),
				videoItem("v3", "Python Crash Course"),
				videoItem("v4", "Python for Beginners"),
			}
		default:
			t.Errorf("unexpected query %q", q)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"items": items})
	}))
	defer srv.Close()

	svc := NewVideoService(config.VideoConfig{BaseURL: srv.URL, APIKey: "k"})
	got, err := svc.SearchEducational("recursion", "python")
	if err != nil {
		t.Fatalf("SearchEducational() error: %v", err)
	}

	want := []VideoSuggestion{
		{Title: "Recursion Explained", VideoID: "v1"},
		{Title: "Recursion in 5 Minutes", VideoID: "v2"},
		{Title: "Python Crash Course", VideoID: "v3"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchEducational() = %v, want %v", got, want)
	}
}

func TestSearchEducationalToleratesGenericFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls > 1 {
			http.Error(w, "quota", http.StatusForbidden)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []map[string]interface{}{videoItem("v1", "First")},
		})
	}))
	defer srv.Close()

	svc := NewVideoService(config.VideoConfig{BaseURL: srv.URL, APIKey: "k"})
	got, err := svc.SearchEducational("concept", "subject")
	if err != nil {
		t.Fatalf("SearchEducational() error: %v", err)
	}
	if len(got) != 1 || got[0].VideoID != "v1" {
		t.Errorf("SearchEducational() = %v, want just v1", got)
	}
}

func TestSearchEducationalFailsWhenSpecificQueryFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewVideoService(config.VideoConfig{BaseURL: srv.URL, APIKey: "k"})
	if _, err := svc.SearchEducational("concept", "subject"); err == nil {
		t.Error("expected error when the first query fails")
	}
}

func TestSearchSkipsItemsWithoutVideoID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []map[string]interface{}{
				{"id": map[string]string{}, "snippet": map[string]string{"title": "Channel Result"}},
				videoItem("v1", "Real Video"),
			},
		})
	}))
	defer srv.Close()

	svc := NewVideoService(config.VideoConfig{BaseURL: srv.URL, APIKey: "k"})
	got, err := svc.search("anything", 3)
	if err != nil {
		t.Fatalf("search() error: %v", err)
	}
	if len(got) != 1 || got[0].VideoID != "v1" {
		t.Errorf("search() = %v, want only v1", got)
	}
}

func TestMergeVideoSuggestions(t *testing.T) {
	mk := func(ids ...string) []VideoSuggestion {
		out := make([]VideoSuggestion, len(ids))
		for i, id := range ids {
			out[i] = VideoSuggestion{VideoID: id, Title: fmt.Sprintf("title-%s", id)}
		}
		return out
	}

	tests := []struct {
		name      string
		primary   []VideoSuggestion
		secondary []VideoSuggestion
		max       int
		wantIDs   []string
	}{
		{"deduplicates across lists", mk("a", "b"), mk("b", "c"), 5, []string{"a", "b", "c"}},
		{"caps at max", mk("a", "b"), mk("c", "d"), 3, []string{"a", "b", "c"}},
		{"primary order first", mk("x"), mk("a", "x"), 3, []string{"x", "a"}},
		{"both empty", nil, nil, 3, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeVideoSuggestions(tt.primary, tt.secondary, tt.max)
			ids := make([]string, len(got))
			for i, v := range got {
				ids[i] = v.VideoID
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("MergeVideoSuggestions() ids = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}
