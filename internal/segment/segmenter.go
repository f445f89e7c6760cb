// Package segment splits decoded novel text into titled chapters using
// pattern-based heading detection.
package segment

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/unalkalkan/txt2epub/pkg/types"
)

// PrologueTitle names the synthetic chapter holding any text that
// appears before the first recognized heading.
const PrologueTitle = "序言"

// Segmenter recognizes chapter headings and splits text around them
type Segmenter struct {
	patterns       []*regexp.Regexp
	maxTitleLength int
}

// New compiles a segmenter from configuration
func New(cfg types.SegmenterConfig) (*Segmenter, error) {
	patterns := make([]*regexp.Regexp, 0, len(cfg.HeadingPatterns))
	for _, p := range cfg.HeadingPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid heading pattern %q: %w", p, err)
		}
		patterns = append(patterns, re)
	}

	maxLen := cfg.MaxTitleLength
	if maxLen <= 0 {
		maxLen = 50
	}

	return &Segmenter{
		patterns:       patterns,
		maxTitleLength: maxLen,
	}, nil
}

// Split segments text into chapters in first-appearance order.
// It never fails and never returns zero chapters: when no line matches
// a heading pattern, the whole text becomes a single chapter titled
// after the source name (path and extension stripped).
func (s *Segmenter) Split(text, sourceName string) []types.Chapter {
	var chapters []types.Chapter

	currentTitle := ""
	var currentBody []string
	sawHeading := false

	flush := func() {
		if currentTitle == "" && len(currentBody) == 0 {
			return
		}
		if currentTitle == "" {
			// Text before the first heading: keep as a prologue
			// only when it has content.
			if len(currentBody) == 0 {
				return
			}
			currentTitle = PrologueTitle
		}
		chapters = append(chapters, types.Chapter{
			Title:      currentTitle,
			Paragraphs: currentBody,
		})
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))

		if s.isHeading(line) {
			flush()
			currentTitle = line
			currentBody = nil
			sawHeading = true
			continue
		}

		// Each non-blank line is one paragraph.
		if line != "" {
			currentBody = append(currentBody, line)
		}
	}
	flush()

	if !sawHeading {
		// Zero headings: the whole text is one chapter named after
		// the source.
		body := currentBodyOf(chapters)
		chapters = []types.Chapter{{
			Title:      TitleFromSourceName(sourceName),
			Paragraphs: body,
		}}
	}

	for i := range chapters {
		chapters[i].Number = i + 1
	}
	return chapters
}

// isHeading reports whether a trimmed line opens a new chapter.
// Headings are short; a long line containing a marker-like prefix is
// body text.
func (s *Segmenter) isHeading(line string) bool {
	if line == "" || utf8.RuneCountInString(line) > s.maxTitleLength {
		return false
	}
	for _, re := range s.patterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// TitleFromSourceName derives a chapter or book title from a file name
// by stripping any path and extension.
func TitleFromSourceName(sourceName string) string {
	base := path.Base(strings.ReplaceAll(sourceName, "\\", "/"))
	title := strings.TrimSuffix(base, path.Ext(base))
	if title == "" || title == "." {
		return "正文"
	}
	return title
}

// currentBodyOf collapses the prologue-only result of a headingless
// split back into a flat paragraph list.
func currentBodyOf(chapters []types.Chapter) []string {
	if len(chapters) == 0 {
		return nil
	}
	return chapters[0].Paragraphs
}
