package analytics

import (
	"math"
	"sort"

	"github.com/cognicore/tokenkit/pkg/tokenkit/analysis"
)

// Collector aggregates document-level term statistics from pipeline output.
// It is not safe for concurrent use.
type Collector struct {
	totalDocs   int64
	totalTokens int64
	termFreq    map[string]int64
	docFreq     map[string]int64
	seen        map[string]struct{} // per-document scratch
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		termFreq: make(map[string]int64),
		docFreq:  make(map[string]int64),
		seen:     make(map[string]struct{}),
	}
}

// Process consumes one document's live terms.
func (c *Collector) Process(terms []string) {
	c.totalDocs++
	clear(c.seen)
	for _, term := range terms {
		c.add(term)
	}
}

// ProcessText runs text through a and consumes its live tokens directly from
// the stream. It returns the number of live tokens in the document.
func (c *Collector) ProcessText(a *analysis.Analyzer, text string) int {
	c.totalDocs++
	clear(c.seen)
	n := 0
	stream := a.TokenStream(text)
	for stream.Advance() {
		tok := stream.Token()
		if tok.Removed() {
			continue
		}
		n++
		c.add(tok.Text)
	}
	return n
}

func (c *Collector) add(term string) {
	c.totalTokens++
	if term == "" {
		return
	}
	c.termFreq[term]++
	if _, ok := c.seen[term]; ok {
		return
	}
	c.seen[term] = struct{}{}
	c.docFreq[term]++
}

// Stats exposes the aggregated counts.
type Stats struct {
	TotalDocs int64
	// TotalTokens counts every live token, including ones with empty text.
	TotalTokens int64
	TermFreq    map[string]int64
	DocFreq     map[string]int64
}

// Snapshot returns a copy of the accumulated statistics.
func (c *Collector) Snapshot() Stats {
	tf := make(map[string]int64, len(c.termFreq))
	for term, n := range c.termFreq {
		tf[term] = n
	}
	df := make(map[string]int64, len(c.docFreq))
	for term, n := range c.docFreq {
		df[term] = n
	}
	return Stats{
		TotalDocs:   c.totalDocs,
		TotalTokens: c.totalTokens,
		TermFreq:    tf,
		DocFreq:     df,
	}
}

// TermStat describes one term across the corpus.
type TermStat struct {
	Term      string  `json:"term"`
	Freq      int64   `json:"freq"`
	DocFreq   int64   `json:"doc_freq"`
	DFPercent float64 `json:"df_percent"`
	IDF       float64 `json:"idf"`
}

// Top returns the k most frequent terms, ties broken by term. k <= 0 returns all.
func (s Stats) Top(k int) []TermStat {
	out := make([]TermStat, 0, len(s.TermFreq))
	for term, freq := range s.TermFreq {
		df := s.DocFreq[term]
		stat := TermStat{Term: term, Freq: freq, DocFreq: df}
		if s.TotalDocs > 0 {
			stat.DFPercent = 100 * float64(df) / float64(s.TotalDocs)
			stat.IDF = math.Log(float64(s.TotalDocs) / (1 + float64(df)))
		}
		out = append(out, stat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Freq != out[j].Freq {
			return out[i].Freq > out[j].Freq
		}
		return out[i].Term < out[j].Term
	})
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}
