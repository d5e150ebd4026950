package wordnik

import (
	"context"
	"net/url"
	"strconv"
)

// Page selects a window of autocomplete results. Page numbers start at 1.
type Page struct {
	Page    int
	PerPage int
}

func (p Page) offset() (perPage, start int) {
	perPage = p.PerPage
	if perPage <= 0 {
		perPage = 15
	}
	page := p.Page
	if page <= 0 {
		page = 1
	}
	return perPage, perPage * (page - 1)
}

// FindOptions controls FindWord.
type FindOptions struct {
	UseSuggest bool
	NotLiteral bool
}

// DefinitionOptions controls Definitions. PartOfSpeech may hold several
// comma-separated values.
type DefinitionOptions struct {
	Limit        int
	PartOfSpeech string
}

// RelatedOptions controls Related. Type may hold several comma-separated
// relation types such as "synonym,antonym".
type RelatedOptions struct {
	Limit int
	Type  string
}

// WordOfTheDay returns the word of the day as decoded JSON.
func (c *Client) WordOfTheDay(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.get(ctx, "/wordoftheday.json", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RandomWord returns a random word. With hasDefinition set the word is
// guaranteed to have at least one dictionary definition.
func (c *Client) RandomWord(ctx context.Context, hasDefinition bool) (*Word, error) {
	var w Word
	q := url.Values{"hasDictionaryDef": {strconv.FormatBool(hasDefinition)}}
	if err := c.get(ctx, "/words.json/randomWord", q, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// Autocomplete returns words starting with fragment, ordered by corpus
// frequency. The fragment itself is always the first match.
func (c *Client) Autocomplete(ctx context.Context, fragment string, page Page) (map[string]any, error) {
	perPage, start := page.offset()
	q := url.Values{
		"maxResults": {strconv.Itoa(perPage)},
		"startAt":    {strconv.Itoa(start)},
	}
	var out map[string]any
	if err := c.get(ctx, "/suggest.json/"+url.PathEscape(fragment), q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func findQuery(useSuggest, literal bool) url.Values {
	suggest := ""
	if useSuggest {
		suggest = "true"
	}
	return url.Values{
		"useSuggest": {suggest},
		"literal":    {strconv.FormatBool(literal)},
	}
}

// FindWord looks up a word. With UseSuggest and NotLiteral set the API
// returns its most likely candidate instead of the literal word.
func (c *Client) FindWord(ctx context.Context, word string, opts FindOptions) (*Word, error) {
	var w Word
	if err := c.get(ctx, wordPath(word, ""), findQuery(opts.UseSuggest, !opts.NotLiteral), &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// SuggestWord performs a literal lookup with suggestions enabled and returns
// the spelling suggestions alongside the word.
func (c *Client) SuggestWord(ctx context.Context, word string) (*WordSuggestions, error) {
	var s WordSuggestions
	if err := c.get(ctx, wordPath(word, ""), findQuery(true, true), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Definitions returns up to opts.Limit definitions (default 10).
func (c *Client) Definitions(ctx context.Context, word string, opts DefinitionOptions) ([]Definition, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 10
	}
	q := url.Values{
		"limit":        {strconv.Itoa(limit)},
		"partOfSpeech": {opts.PartOfSpeech},
	}
	defs := []Definition{}
	if err := c.get(ctx, wordPath(word, "/definitions"), q, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// Examples returns example sentences for a word.
func (c *Client) Examples(ctx context.Context, word string) ([]Example, error) {
	examples := []Example{}
	if err := c.get(ctx, wordPath(word, "/examples"), nil, &examples); err != nil {
		return nil, err
	}
	return examples, nil
}

// Related returns related words keyed by relation type. Each Word carries
// its relation type in RelType.
func (c *Client) Related(ctx context.Context, word string, opts RelatedOptions) (map[string][]Word, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}
	q := url.Values{
		"limit": {strconv.Itoa(limit)},
		"type":  {opts.Type},
	}
	var groups []relatedGroup
	if err := c.get(ctx, wordPath(word, "/related"), q, &groups); err != nil {
		return nil, err
	}

	related := make(map[string][]Word, len(groups))
	for _, g := range groups {
		words := related[g.RelType]
		for _, ws := range g.Wordstrings {
			words = append(words, Word{Wordstring: ws, RelType: g.RelType})
		}
		related[g.RelType] = words
	}
	return related, nil
}

// Phrases returns bigram phrases containing the word (default limit 10).
func (c *Client) Phrases(ctx context.Context, word string, limit int) ([]map[string]any, error) {
	if limit <= 0 {
		limit = 10
	}
	phrases := []map[string]any{}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.get(ctx, wordPath(word, "/phrases"), q, &phrases); err != nil {
		return nil, err
	}
	return phrases, nil
}

// Punctuation reports how often the word appears before punctuation marks.
func (c *Client) Punctuation(ctx context.Context, word string) (*Punctuation, error) {
	var p Punctuation
	if err := c.get(ctx, wordPath(word, "/punctuationFactor"), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// TextPronunciations returns the word's pronunciations in arpabet and
// gcide-diacritical form.
func (c *Client) TextPronunciations(ctx context.Context, word string) ([]map[string]any, error) {
	prons := []map[string]any{}
	if err := c.get(ctx, wordPath(word, "/pronunciations"), nil, &prons); err != nil {
		return nil, err
	}
	return prons, nil
}
