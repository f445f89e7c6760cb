package segment

import (
	"strings"
	"testing"

	"github.com/unalkalkan/txt2epub/internal/config"
	"github.com/unalkalkan/txt2epub/pkg/types"
)

func newDefault(t *testing.T) *Segmenter {
	t.Helper()
	s, err := New(types.SegmenterConfig{
		HeadingPatterns: config.DefaultHeadingPatterns(),
		MaxTitleLength:  50,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestSplit_TwoChapters(t *testing.T) {
	s := newDefault(t)

	chapters := s.Split("第一章 开始\n内容一\n第二章 结束\n内容二", "book.txt")
	if len(chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(chapters))
	}

	if chapters[0].Title != "第一章 开始" || chapters[0].Number != 1 {
		t.Errorf("unexpected first chapter: %+v", chapters[0])
	}
	if len(chapters[0].Paragraphs) != 1 || chapters[0].Paragraphs[0] != "内容一" {
		t.Errorf("unexpected first chapter body: %v", chapters[0].Paragraphs)
	}
	if chapters[1].Title != "第二章 结束" || chapters[1].Number != 2 {
		t.Errorf("unexpected second chapter: %+v", chapters[1])
	}
	if len(chapters[1].Paragraphs) != 1 || chapters[1].Paragraphs[0] != "内容二" {
		t.Errorf("unexpected second chapter body: %v", chapters[1].Paragraphs)
	}
}

func TestSplit_NoHeadings(t *testing.T) {
	s := newDefault(t)

	chapters := s.Split("只是一段普通的文字。\n没有任何章节标记。", "story.txt")
	if len(chapters) != 1 {
		t.Fatalf("expected 1 chapter, got %d", len(chapters))
	}
	if chapters[0].Title != "story" {
		t.Errorf("expected title derived from source name, got %q", chapters[0].Title)
	}
	if len(chapters[0].Paragraphs) != 2 {
		t.Errorf("expected full text as body, got %v", chapters[0].Paragraphs)
	}
}

func TestSplit_Prologue(t *testing.T) {
	s := newDefault(t)

	t.Run("Non-empty leading text", func(t *testing.T) {
		chapters := s.Split("简介：一个山村少年的故事。\n第一章 七玄门\n正文。", "book.txt")
		if len(chapters) != 2 {
			t.Fatalf("expected prologue + 1 chapter, got %d", len(chapters))
		}
		if chapters[0].Title != PrologueTitle {
			t.Errorf("expected prologue title, got %q", chapters[0].Title)
		}
		if chapters[1].Title != "第一章 七玄门" {
			t.Errorf("unexpected chapter title: %q", chapters[1].Title)
		}
	})

	t.Run("Whitespace-only leading text", func(t *testing.T) {
		chapters := s.Split("\n  \n第一章 七玄门\n正文。", "book.txt")
		if len(chapters) != 1 {
			t.Fatalf("expected whitespace prologue to be dropped, got %d chapters", len(chapters))
		}
	})
}

func TestSplit_HeadingVariants(t *testing.T) {
	s := newDefault(t)

	tests := []struct {
		name    string
		line    string
		heading bool
	}{
		{"Numeral word chapter", "第一章 开始", true},
		{"Digit chapter", "第12章 突破", true},
		{"Section noun", "第三节 基础", true},
		{"Volume noun", "第二卷 风起", true},
		{"Hui noun", "第一百二十回 大结局", true},
		{"English chapter", "Chapter 12", true},
		{"Indented heading", "  第五章 夜探", true},
		{"Marker mid-sentence", "他说第一章的内容很精彩。", false},
		{"Over-long line", "第一章 " + strings.Repeat("很长的标题", 20), false},
		{"Plain prose", "这是普通的一行。", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.isHeading(strings.TrimSpace(tt.line))
			if got != tt.heading {
				t.Errorf("isHeading(%q) = %v, expected %v", tt.line, got, tt.heading)
			}
		})
	}
}

func TestSplit_OrderPreserved(t *testing.T) {
	s := newDefault(t)

	// Duplicate titles must not be merged or reordered.
	chapters := s.Split("第一章 相同\n甲\n第一章 相同\n乙\n第二章 不同\n丙", "book.txt")
	if len(chapters) != 3 {
		t.Fatalf("expected 3 chapters, got %d", len(chapters))
	}
	for i, want := range []string{"甲", "乙", "丙"} {
		if chapters[i].Paragraphs[0] != want {
			t.Errorf("chapter %d body = %q, expected %q", i+1, chapters[i].Paragraphs[0], want)
		}
		if chapters[i].Number != i+1 {
			t.Errorf("chapter %d has number %d", i+1, chapters[i].Number)
		}
	}
}

func TestSplit_EmptyText(t *testing.T) {
	s := newDefault(t)

	chapters := s.Split("", "empty.txt")
	if len(chapters) != 1 {
		t.Fatalf("expected 1 chapter for empty text, got %d", len(chapters))
	}
	if chapters[0].Title != "empty" {
		t.Errorf("expected source-derived title, got %q", chapters[0].Title)
	}
	if len(chapters[0].Paragraphs) != 0 {
		t.Errorf("expected empty body, got %v", chapters[0].Paragraphs)
	}
}

func TestTitleFromSourceName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"story.txt", "story"},
		{"novels/凡人修仙传.txt", "凡人修仙传"},
		{`C:\books\story.txt`, "story"},
		{"noext", "noext"},
		{"", "正文"},
	}

	for _, tt := range tests {
		if got := TitleFromSourceName(tt.in); got != tt.want {
			t.Errorf("TitleFromSourceName(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestNew_InvalidPattern(t *testing.T) {
	_, err := New(types.SegmenterConfig{HeadingPatterns: []string{"(["}})
	if err == nil {
		t.Error("expected error for invalid pattern")
	}
}
