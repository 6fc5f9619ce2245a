package swapi

// FilmsResponse is the root object of the /films endpoint
type FilmsResponse struct {
	Count    int    `json:"count"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
	Results  []Film `json:"results"`
}

// Film is a single entry of the results array. Fields the catalog does not
// use (characters, planets, starships, ...) are left out and ignored.
type Film struct {
	Title        string `json:"title"`
	EpisodeID    int    `json:"episode_id"`
	OpeningCrawl string `json:"opening_crawl"`
	Director     string `json:"director"`
	Producer     string `json:"producer,omitempty"`
	ReleaseDate  string `json:"release_date"`
	URL          string `json:"url,omitempty"`
}
