package wordnik

import (
	"context"
	"net/http"
	"net/url"
)

// Lists returns the authenticated user's word lists.
func (c *Client) Lists(ctx context.Context) ([]List, error) {
	if err := c.ensureAuthenticated(); err != nil {
		return nil, err
	}
	lists := []List{}
	if err := c.get(ctx, "/wordLists.json", nil, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// CreateList creates a word list for the authenticated user.
func (c *Client) CreateList(ctx context.Context, name, description string) (*List, error) {
	if err := c.ensureAuthenticated(); err != nil {
		return nil, err
	}
	body := map[string]string{"name": name, "description": description}
	var l List
	if err := c.do(ctx, http.MethodPost, "/wordLists.json", nil, body, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// ListWords returns the entries of a word list identified by its permalink.
func (c *Client) ListWords(ctx context.Context, permalinkID string) ([]map[string]any, error) {
	words := []map[string]any{}
	if err := c.get(ctx, "/wordList.json/"+url.PathEscape(permalinkID)+"/words", nil, &words); err != nil {
		return nil, err
	}
	return words, nil
}
