package copywriter

import (
	"hash/fnv"
	"strings"
	"time"

	"server/internal/domain"
)

const (
	maxDescriptionWords = 11
	maxTaglineWords     = 8
	maxDescriptions     = 6
	maxTaglines         = 9

	// Fixed linear-congruential step (Knuth MMIX constants).
	lcgMultiplier = 6364136223846793005
	lcgIncrement  = 1442695040888963407
)

// Generator is the local, dependency-free copy source. Generate varies its
// tagline order across calls by folding wall-clock time into the seed;
// GenerateSeeded pins the seed for reproducible output.
type Generator struct {
	now func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

// Generate produces copy for the event text. It never fails: with no keyword
// match the generic pack applies, and every returned string respects the
// word limits.
func (g *Generator) Generate(req domain.CopyRequest) *domain.CopyResult {
	now := g.now
	if now == nil {
		now = time.Now
	}
	seed := hashTheme(req.Theme) ^ uint64(now().UnixNano())
	return g.GenerateSeeded(req, seed)
}

// GenerateSeeded is Generate with an explicit shuffle seed, for callers that
// need stable output (and for tests).
func (g *Generator) GenerateSeeded(req domain.CopyRequest, seed uint64) *domain.CopyResult {
	p := matchPack(req)
	rng := lcg(seed)

	taglines := buildTaglines(p, rng)
	descriptions := buildDescriptions(p, req.Theme)

	return &domain.CopyResult{
		Description:  descriptions[0],
		Descriptions: descriptions,
		Taglines:     taglines,
		Palette:      p.palettes[seed%3][:],
	}
}

func matchPack(req domain.CopyRequest) pack {
	haystack := strings.ToLower(req.Theme + " " + req.DressCode + " " + req.Note)
	for _, p := range packs {
		for _, kw := range p.keywords {
			if strings.Contains(haystack, kw) {
				return p
			}
		}
	}
	return genericPack
}

// buildTaglines pairs leads with moods and moods with actions, deduplicates,
// shuffles with the seeded permutation, and caps the list at nine entries of
// at most eight words each.
func buildTaglines(p pack, rng *lcgState) []string {
	var candidates []string
	for _, lead := range p.leads {
		for _, mood := range p.moods {
			candidates = append(candidates, lead+" "+mood)
		}
	}
	for _, mood := range p.moods {
		for _, action := range p.actions {
			candidates = append(candidates, mood+" "+action)
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	unique := candidates[:0]
	for _, c := range candidates {
		if wordCount(c) > maxTaglineWords {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}

	// Fisher-Yates driven by the LCG.
	for i := len(unique) - 1; i > 0; i-- {
		j := int(rng.next() % uint64(i+1))
		unique[i], unique[j] = unique[j], unique[i]
	}

	if len(unique) > maxTaglines {
		unique = unique[:maxTaglines]
	}
	return unique
}

// buildDescriptions returns the pack default, three template-filled variants,
// and a word-limited fallback, filtered to eleven words or fewer and capped
// at six. The first entry is the best pick.
func buildDescriptions(p pack, theme string) []string {
	theme = strings.TrimSpace(theme)
	candidates := []string{
		p.description,
		"Join us for " + strings.ToLower(p.moods[0]) + " of " + strings.ToLower(p.moods[3]) + " and connection.",
		strings.TrimSuffix(p.leads[0], " ") + " " + strings.ToLower(p.moods[1]) + " you won't want to miss.",
		"Save the date: " + theme + " is coming.",
		clampWords("An unforgettable "+strings.ToLower(p.moods[2])+" with friends old and new, celebrating "+theme, maxDescriptionWords),
	}

	seen := make(map[string]struct{}, len(candidates))
	var out []string
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" || wordCount(c) > maxDescriptionWords {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
		if len(out) == maxDescriptions {
			break
		}
	}
	if len(out) == 0 {
		out = []string{clampWords(p.description, maxDescriptionWords)}
	}
	return out
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func clampWords(s string, limit int) string {
	words := strings.Fields(s)
	if len(words) <= limit {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:limit], " ")
}

func hashTheme(theme string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(theme))))
	return h.Sum64()
}

type lcgState struct {
	state uint64
}

func lcg(seed uint64) *lcgState {
	return &lcgState{state: seed}
}

func (l *lcgState) next() uint64 {
	l.state = l.state*lcgMultiplier + lcgIncrement
	return l.state
}
