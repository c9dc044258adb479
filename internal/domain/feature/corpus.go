package feature

import "math"

// Document is one entry of a corpus: a key and its analyzed terms.
type Document struct {
	Key   string
	Terms []string
}

// Corpus holds document frequencies for one shared document collection.
// Projects and collaborators are counted together so that their vectors
// are comparable.
type Corpus struct {
	docs int
	df   map[string]int
}

// NewCorpus counts document frequencies. Documents without terms are ignored.
func NewCorpus(docs []Document) *Corpus {
	c := &Corpus{df: make(map[string]int)}
	for _, d := range docs {
		if len(d.Terms) == 0 {
			continue
		}
		c.docs++
		seen := make(map[string]struct{}, len(d.Terms))
		for _, t := range d.Terms {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			c.df[t]++
		}
	}
	return c
}

// Size returns the number of non-empty documents.
func (c *Corpus) Size() int { return c.docs }

// VocabularySize returns the number of distinct terms.
func (c *Corpus) VocabularySize() int { return len(c.df) }

// IDF returns 1 + ln(N / (1 + df)). Terms unseen by the corpus get 1 + ln(N).
func (c *Corpus) IDF(term string) float64 {
	if c.docs == 0 {
		return 0
	}
	return 1 + math.Log(float64(c.docs)/float64(1+c.df[term]))
}

// Vectorize weighs terms by raw term frequency times IDF.
// An empty term list or an empty corpus yields an empty vector.
func (c *Corpus) Vectorize(terms []string) Vector {
	v := make(Vector)
	if len(terms) == 0 || c.docs == 0 {
		return v
	}
	tf := make(map[string]int, len(terms))
	for _, t := range terms {
		tf[t]++
	}
	for t, n := range tf {
		if w := float64(n) * c.IDF(t); w > 0 {
			v[t] = w
		}
	}
	return v
}

// VectorizeAll vectorizes every document against the corpus, keyed by Document.Key.
func (c *Corpus) VectorizeAll(docs []Document) map[string]Vector {
	out := make(map[string]Vector, len(docs))
	for _, d := range docs {
		out[d.Key] = c.Vectorize(d.Terms)
	}
	return out
}
