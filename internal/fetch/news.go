package fetch

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sony/gobreaker"
)

// maxArticles caps how many headlines one cycle keeps.
const maxArticles = 10

// Article is one headline from the GDELT article search feed.
type Article struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	URL    string `json:"url"`
}

// NewsFetcher pulls the latest articles matching a fixed query term.
type NewsFetcher struct {
	baseURL string
	query   string
	client  *Client
	circuit *gobreaker.CircuitBreaker
}

func NewNewsFetcher(client *Client, query string) *NewsFetcher {
	if query == "" {
		query = "climate"
	}
	return &NewsFetcher{
		baseURL: "https://api.gdeltproject.org/api/v2/doc/doc",
		query:   query,
		client:  client,
		circuit: newBreaker("news"),
	}
}

func (f *NewsFetcher) Fetch(ctx context.Context) ([]Article, error) {
	v := url.Values{}
	v.Set("query", f.query)
	v.Set("mode", "artlist")
	v.Set("format", "json")

	var payload struct {
		Articles []struct {
			Title  string `json:"title"`
			Domain string `json:"domain"`
			URL    string `json:"url"`
		} `json:"articles"`
	}
	if err := f.client.getJSON(ctx, f.circuit, "news", f.baseURL+"?"+v.Encode(), nil, &payload); err != nil {
		return nil, err
	}
	if len(payload.Articles) == 0 {
		return nil, &Error{
			Kind: KindUpstream,
			Op:   "news",
			Err:  fmt.Errorf("no articles in response"),
		}
	}

	n := len(payload.Articles)
	if n > maxArticles {
		n = maxArticles
	}
	articles := make([]Article, 0, n)
	for _, a := range payload.Articles[:n] {
		articles = append(articles, Article{
			Title:  a.Title,
			Source: a.Domain,
			URL:    a.URL,
		})
	}
	return articles, nil
}
