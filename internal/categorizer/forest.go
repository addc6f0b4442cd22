package categorizer

import (
	"math"
	"math/rand"
	"sort"
)

// Forest is a bagged ensemble of CART-style decision trees over the
// TF-IDF feature space. An ensemble stays robust on sparse
// high-dimensional inputs where a single tree overfits a handful of
// vocabulary terms.
type Forest struct {
	Trees       []Tree `json:"trees"`
	NumFeatures int    `json:"num_features"`
	NumClasses  int    `json:"num_classes"`
}

// Tree is a flattened binary decision tree.
type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

// TreeNode is one split or leaf. Leaf nodes carry the majority class;
// split nodes route on Feature <= Threshold.
type TreeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Class     int     `json:"class"`
	Leaf      bool    `json:"leaf"`
}

// forestConfig bounds tree growth. The caps matter more for training
// time than accuracy at statement-corpus sizes.
type forestConfig struct {
	numTrees        int
	maxDepth        int
	minSamplesSplit int
	maxThresholds   int
	seed            int64
}

func defaultForestConfig() forestConfig {
	return forestConfig{
		numTrees:        100,
		maxDepth:        12,
		minSamplesSplit: 2,
		maxThresholds:   8,
		seed:            42,
	}
}

// trainForest fits the ensemble on dense sample vectors with integer
// class labels. Each tree sees a bootstrap sample and considers
// sqrt(numFeatures) random features per split.
func trainForest(samples [][]float64, labels []int, numClasses int, cfg forestConfig) *Forest {
	if len(samples) == 0 {
		return &Forest{NumClasses: numClasses}
	}

	numFeatures := len(samples[0])
	rng := rand.New(rand.NewSource(cfg.seed))

	forest := &Forest{
		Trees:       make([]Tree, 0, cfg.numTrees),
		NumFeatures: numFeatures,
		NumClasses:  numClasses,
	}

	for t := 0; t < cfg.numTrees; t++ {
		bootstrap := make([]int, len(samples))
		for i := range bootstrap {
			bootstrap[i] = rng.Intn(len(samples))
		}

		builder := &treeBuilder{
			samples:    samples,
			labels:     labels,
			numClasses: numClasses,
			cfg:        cfg,
			mtry:       max(1, int(math.Sqrt(float64(numFeatures)))),
			rng:        rng,
		}
		builder.build(bootstrap, 0)
		forest.Trees = append(forest.Trees, Tree{Nodes: builder.nodes})
	}
	return forest
}

// Predict returns the majority-vote class across all trees.
func (f *Forest) Predict(vec []float64) int {
	votes := make([]int, f.NumClasses)
	for i := range f.Trees {
		votes[f.Trees[i].predict(vec)]++
	}
	best := 0
	for class, count := range votes {
		if count > votes[best] {
			best = class
		}
	}
	return best
}

func (t *Tree) predict(vec []float64) int {
	if len(t.Nodes) == 0 {
		return 0
	}
	idx := 0
	for {
		node := t.Nodes[idx]
		if node.Leaf {
			return node.Class
		}
		if vec[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
}

type treeBuilder struct {
	samples    [][]float64
	labels     []int
	numClasses int
	cfg        forestConfig
	mtry       int
	rng        *rand.Rand
	nodes      []TreeNode
}

// build grows the tree recursively and returns the node index.
func (b *treeBuilder) build(indices []int, depth int) int {
	counts := b.classCounts(indices)

	if depth >= b.cfg.maxDepth || len(indices) < b.cfg.minSamplesSplit || isPure(counts) {
		return b.leaf(counts)
	}

	feature, threshold, ok := b.bestSplit(indices, counts)
	if !ok {
		return b.leaf(counts)
	}

	var left, right []int
	for _, i := range indices {
		if b.samples[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return b.leaf(counts)
	}

	nodeIdx := len(b.nodes)
	b.nodes = append(b.nodes, TreeNode{Feature: feature, Threshold: threshold})
	leftIdx := b.build(left, depth+1)
	rightIdx := b.build(right, depth+1)
	b.nodes[nodeIdx].Left = leftIdx
	b.nodes[nodeIdx].Right = rightIdx
	return nodeIdx
}

func (b *treeBuilder) leaf(counts []int) int {
	best := 0
	for class, count := range counts {
		if count > counts[best] {
			best = class
		}
	}
	idx := len(b.nodes)
	b.nodes = append(b.nodes, TreeNode{Leaf: true, Class: best})
	return idx
}

func (b *treeBuilder) classCounts(indices []int) []int {
	counts := make([]int, b.numClasses)
	for _, i := range indices {
		counts[b.labels[i]]++
	}
	return counts
}

// bestSplit searches a random feature subset for the gini-optimal
// threshold, capping candidate thresholds per feature.
func (b *treeBuilder) bestSplit(indices []int, counts []int) (int, float64, bool) {
	parentGini := gini(counts, len(indices))
	numFeatures := len(b.samples[indices[0]])

	bestGain := 0.0
	bestFeature := -1
	bestThreshold := 0.0

	for f := 0; f < b.mtry; f++ {
		feature := b.rng.Intn(numFeatures)

		values := make([]float64, 0, len(indices))
		for _, i := range indices {
			values = append(values, b.samples[i][feature])
		}
		for _, threshold := range candidateThresholds(values, b.cfg.maxThresholds) {
			gain := b.splitGain(indices, feature, threshold, parentGini)
			if gain > bestGain {
				bestGain = gain
				bestFeature = feature
				bestThreshold = threshold
			}
		}
	}

	if bestFeature < 0 {
		return 0, 0, false
	}
	return bestFeature, bestThreshold, true
}

func (b *treeBuilder) splitGain(indices []int, feature int, threshold, parentGini float64) float64 {
	leftCounts := make([]int, b.numClasses)
	rightCounts := make([]int, b.numClasses)
	leftN, rightN := 0, 0

	for _, i := range indices {
		if b.samples[i][feature] <= threshold {
			leftCounts[b.labels[i]]++
			leftN++
		} else {
			rightCounts[b.labels[i]]++
			rightN++
		}
	}
	if leftN == 0 || rightN == 0 {
		return 0
	}

	total := float64(leftN + rightN)
	weighted := float64(leftN)/total*gini(leftCounts, leftN) +
		float64(rightN)/total*gini(rightCounts, rightN)
	return parentGini - weighted
}

// candidateThresholds returns midpoints between distinct sorted
// values, downsampled to at most limit candidates.
func candidateThresholds(values []float64, limit int) []float64 {
	sort.Float64s(values)
	var mids []float64
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1] {
			mids = append(mids, (values[i]+values[i-1])/2)
		}
	}
	if limit > 0 && len(mids) > limit {
		step := len(mids) / limit
		sampled := make([]float64, 0, limit)
		for i := 0; i < len(mids); i += step {
			sampled = append(sampled, mids[i])
		}
		mids = sampled
	}
	return mids
}

func gini(counts []int, total int) float64 {
	if total == 0 {
		return 0
	}
	impurity := 1.0
	for _, c := range counts {
		p := float64(c) / float64(total)
		impurity -= p * p
	}
	return impurity
}

func isPure(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}
