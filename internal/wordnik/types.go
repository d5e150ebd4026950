package wordnik

// Word is a thin record for a single word.
type Word struct {
	ID         int64  `json:"id,omitempty"`
	Wordstring string `json:"wordstring"`
	RelType    string `json:"rel_type,omitempty"`
}

// WordSuggestions is returned by a literal lookup with suggestions enabled.
type WordSuggestions struct {
	ID          int64    `json:"id"`
	Wordstring  string   `json:"wordstring"`
	Suggestions []string `json:"suggestions"`
}

// Definition is one dictionary definition of a word.
type Definition struct {
	Headword     string `json:"headword"`
	PartOfSpeech string `json:"partOfSpeech"`
	Text         string `json:"text"`
	Sequence     string `json:"sequence,omitempty"`
}

// Example is a usage example drawn from a published text.
type Example struct {
	Year    int    `json:"year"`
	Title   string `json:"title"`
	Display string `json:"display"`
	URL     string `json:"url,omitempty"`
}

// Punctuation reports how often a word appears before each punctuation mark.
type Punctuation struct {
	ExclamationPointCount int64 `json:"exclamationPointCount"`
	QuestionMarkCount     int64 `json:"questionMarkCount"`
	PeriodCount           int64 `json:"periodCount"`
	TotalCount            int64 `json:"totalCount"`
}

// List is a user's word list.
type List struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UserName    string `json:"userName"`
	WordCount   int    `json:"wordCount"`
	PermalinkID string `json:"permalinkId"`
}

type relatedGroup struct {
	RelType     string   `json:"relType"`
	Wordstrings []string `json:"wordstrings"`
}

type authResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  int64  `json:"userId"`
}
