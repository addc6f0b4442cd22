package categorizer

import (
	"math"
	"sort"
)

// Vectorizer is a fixed-vocabulary TF-IDF representation fitted on the
// training corpus. The vocabulary and IDF weights are frozen at fit
// time so inference vectors line up with the classifier's features.
type Vectorizer struct {
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf"`
	MaxFeatures int            `json:"max_features"`
}

// fitVectorizer builds the vocabulary from tokenized documents,
// keeping the maxFeatures most frequent terms. Ties break
// alphabetically so fitting is deterministic.
func fitVectorizer(docs [][]string, maxFeatures int) *Vectorizer {
	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, term := range doc {
			if _, dup := seen[term]; !dup {
				seen[term] = struct{}{}
				docFreq[term]++
			}
		}
	}

	terms := make([]string, 0, len(docFreq))
	for term := range docFreq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if docFreq[terms[i]] != docFreq[terms[j]] {
			return docFreq[terms[i]] > docFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if maxFeatures > 0 && len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}

	v := &Vectorizer{
		Vocabulary:  make(map[string]int, len(terms)),
		IDF:         make([]float64, len(terms)),
		MaxFeatures: maxFeatures,
	}
	total := len(docs)
	for i, term := range terms {
		v.Vocabulary[term] = i
		// smoothed IDF keeps unseen-term weights finite
		v.IDF[i] = math.Log(float64(1+total)/float64(1+docFreq[term])) + 1
	}
	return v
}

// NumFeatures returns the fitted vocabulary size.
func (v *Vectorizer) NumFeatures() int {
	return len(v.IDF)
}

// Transform maps tokens onto an L2-normalized TF-IDF vector. Terms
// outside the fitted vocabulary are ignored.
func (v *Vectorizer) Transform(tokens []string) []float64 {
	vec := make([]float64, len(v.IDF))
	for _, term := range tokens {
		if idx, ok := v.Vocabulary[term]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for i := range vec {
		if vec[i] > 0 {
			vec[i] *= v.IDF[i]
			norm += vec[i] * vec[i]
		}
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}
