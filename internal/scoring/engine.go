package scoring

import (
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// LineClass is the heuristic bucket a line falls into
type LineClass int

const (
	ClassBlank LineClass = iota
	ClassComment
	ClassImport
	ClassDefinition
	ClassCode
)

func (c LineClass) String() string {
	switch c {
	case ClassBlank:
		return "blank"
	case ClassComment:
		return "comment"
	case ClassImport:
		return "import"
	case ClassDefinition:
		return "definition"
	case ClassCode:
		return "code"
	default:
		return "unknown"
	}
}

// Range is a half-open interval [Min, Max)
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies in [Min, Max)
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

var classRanges = map[LineClass]Range{
	ClassBlank:      {Min: 0.1, Max: 0.3},
	ClassComment:    {Min: 0.2, Max: 0.5},
	ClassImport:     {Min: 0.7, Max: 0.9},
	ClassDefinition: {Min: 0.6, Max: 0.8},
	ClassCode:       {Min: 0.3, Max: 0.7},
}

// RangeFor returns the interval scores for class are drawn from
func RangeFor(class LineClass) Range {
	if r, ok := classRanges[class]; ok {
		return r
	}
	return classRanges[ClassCode]
}

// Classify applies the heuristic rules in priority order; the first match wins.
func Classify(line string) LineClass {
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		return ClassBlank
	case strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#"):
		return ClassComment
	case strings.Contains(line, "import") || strings.Contains(line, "from"):
		return ClassImport
	case strings.Contains(line, "function") ||
		strings.Contains(line, "def ") ||
		strings.Contains(line, "class "):
		return ClassDefinition
	default:
		return ClassCode
	}
}

// Round3 rounds v to 3 decimal places
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Engine produces mock survival probabilities. It is safe for concurrent use.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine creates an engine. A zero seed seeds from the clock.
func NewEngine(seed int64) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

// Score draws a probability for a single line
func (e *Engine) Score(line string) float64 {
	return e.draw(RangeFor(Classify(line)))
}

// Predict returns one probability per line, in input order
func (e *Engine) Predict(lines []string) []float64 {
	probabilities := make([]float64, len(lines))
	for i, line := range lines {
		probabilities[i] = e.Score(line)
	}
	return probabilities
}

// draw picks uniformly on the 0.001 grid inside r, so the result is
// already rounded and never lands on r.Max.
func (e *Engine) draw(r Range) float64 {
	lo := int(math.Round(r.Min * 1000))
	hi := int(math.Round(r.Max * 1000))

	e.mu.Lock()
	k := lo + e.rng.Intn(hi-lo)
	e.mu.Unlock()

	return float64(k) / 1000
}
