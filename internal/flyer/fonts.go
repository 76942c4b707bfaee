package flyer

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"server/internal/domain"
)

// FontSet holds the parsed binaries for the three font roles plus bold and
// italic variants of the body font. Display and Script degrade to Body when
// their own candidates cannot be resolved.
type FontSet struct {
	body       *opentype.Font
	bodyBold   *opentype.Font
	bodyItalic *opentype.Font
	display    *opentype.Font
	script     *opentype.Font
}

// Face builds a font.Face for one text node. Bold and italic only apply to
// the body role; display and script ship a single weight each.
func (fs *FontSet) Face(role FontRole, size float64, bold, italic bool) (font.Face, error) {
	f := fs.body
	switch role {
	case RoleDisplay:
		f = fs.display
	case RoleScript:
		f = fs.script
	default:
		if bold {
			f = fs.bodyBold
		} else if italic {
			f = fs.bodyItalic
		}
	}
	if f == nil {
		return nil, domain.ErrFontUnavailable
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

type fontCandidate struct {
	paths  []string
	urls   []string // primary plus one mirror
	backup []byte   // embedded last resort
}

var fontCandidates = map[string]fontCandidate{
	"body": {
		paths: []string{
			"DejaVuSans.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
			"/System/Library/Fonts/Supplemental/Arial.ttf",
		},
		urls: []string{
			"https://raw.githubusercontent.com/google/fonts/main/apache/opensans/OpenSans%5Bwdth,wght%5D.ttf",
			"https://cdn.jsdelivr.net/gh/google/fonts@main/apache/opensans/OpenSans%5Bwdth,wght%5D.ttf",
		},
		backup: goregular.TTF,
	},
	"body-bold": {
		paths: []string{
			"DejaVuSans-Bold.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
			"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
		},
		backup: gobold.TTF,
	},
	"body-italic": {
		paths: []string{
			"DejaVuSans-Oblique.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans-Oblique.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Italic.ttf",
		},
		backup: goitalic.TTF,
	},
	"display": {
		paths: []string{
			"PlayfairDisplay-Bold.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSerif-Bold.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSerif-Bold.ttf",
		},
		urls: []string{
			"https://raw.githubusercontent.com/google/fonts/main/ofl/playfairdisplay/PlayfairDisplay%5Bwght%5D.ttf",
			"https://cdn.jsdelivr.net/gh/google/fonts@main/ofl/playfairdisplay/PlayfairDisplay%5Bwght%5D.ttf",
		},
	},
	"script": {
		paths: []string{
			"DancingScript-Regular.ttf",
			"GreatVibes-Regular.ttf",
		},
		urls: []string{
			"https://raw.githubusercontent.com/google/fonts/main/ofl/dancingscript/DancingScript%5Bwght%5D.ttf",
			"https://cdn.jsdelivr.net/gh/google/fonts@main/ofl/dancingscript/DancingScript%5Bwght%5D.ttf",
		},
	},
}

// FontLoader resolves the three font roles once per process: local candidate
// paths first, then the webfont URL and its mirror, then the embedded Go
// fonts. Fonts do not change per request, so the result is memoized and safe
// for concurrent reads.
type FontLoader struct {
	// Dir is an optional directory prepended to relative candidate paths.
	Dir string
	// Client is used for webfont fetches; a 10s-timeout client by default.
	Client *http.Client
	// SkipNetwork disables the URL fallback, for tests and offline use.
	SkipNetwork bool

	once sync.Once
	set  *FontSet
	err  error
}

// Load resolves all roles. A body font that cannot be parsed by any method is
// a configuration failure for the whole generation; display and script fall
// back to the body font.
func (l *FontLoader) Load() (*FontSet, error) {
	l.once.Do(func() {
		l.set, l.err = l.resolveAll()
	})
	return l.set, l.err
}

func (l *FontLoader) resolveAll() (*FontSet, error) {
	body, err := l.resolve("body")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFontUnavailable, err)
	}
	set := &FontSet{body: body}

	if f, err := l.resolve("body-bold"); err == nil {
		set.bodyBold = f
	} else {
		set.bodyBold = body
	}
	if f, err := l.resolve("body-italic"); err == nil {
		set.bodyItalic = f
	} else {
		set.bodyItalic = body
	}
	if f, err := l.resolve("display"); err == nil {
		set.display = f
	} else {
		set.display = set.bodyBold
	}
	if f, err := l.resolve("script"); err == nil {
		set.script = f
	} else {
		set.script = set.bodyItalic
	}
	return set, nil
}

func (l *FontLoader) resolve(role string) (*opentype.Font, error) {
	cand, ok := fontCandidates[role]
	if !ok {
		return nil, fmt.Errorf("unknown font role %q", role)
	}

	for _, p := range cand.paths {
		if !filepath.IsAbs(p) {
			if l.Dir == "" {
				continue
			}
			p = filepath.Join(l.Dir, p)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if f, err := opentype.Parse(data); err == nil {
			return f, nil
		}
	}

	if !l.SkipNetwork {
		for _, u := range cand.urls {
			data, err := l.fetch(u)
			if err != nil {
				continue
			}
			if f, err := opentype.Parse(data); err == nil {
				return f, nil
			}
		}
	}

	if cand.backup != nil {
		return opentype.Parse(cand.backup)
	}
	return nil, fmt.Errorf("no usable candidate for %s", role)
}

func (l *FontLoader) fetch(url string) ([]byte, error) {
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 8<<20))
}
