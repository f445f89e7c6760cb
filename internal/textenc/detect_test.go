package textenc

import (
	"errors"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

func TestDetect_UTF8(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"ASCII", "plain ascii text"},
		{"Chinese", "第一章 凡人修仙传\n山村少年。"},
		{"Empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, enc, err := Detect([]byte(tt.text))
			if err != nil {
				t.Fatalf("Detect failed: %v", err)
			}
			if enc != EncodingUTF8 {
				t.Errorf("expected UTF-8, got %s", enc)
			}
			if got != tt.text {
				t.Errorf("round trip mismatch: got %q", got)
			}
		})
	}
}

func TestDetect_UTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("带BOM的文本")...)

	got, enc, err := Detect(data)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if enc != EncodingUTF8 {
		t.Errorf("expected UTF-8, got %s", enc)
	}
	if got != "带BOM的文本" {
		t.Errorf("BOM should be stripped, got %q", got)
	}
}

func TestDetect_UTF16(t *testing.T) {
	const text = "第一章 开始"
	data, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatalf("failed to build UTF-16 fixture: %v", err)
	}

	got, enc, err := Detect(data)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if enc != EncodingUTF16 {
		t.Errorf("expected UTF-16, got %s", enc)
	}
	if got != text {
		t.Errorf("decoded text mismatch: got %q", got)
	}
}

func TestDetect_GB18030(t *testing.T) {
	const text = "第一章 凡人修仙传\n忘语著。"
	data, err := simplifiedchinese.GB18030.NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatalf("failed to build GB18030 fixture: %v", err)
	}

	got, enc, err := Detect(data)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if enc != EncodingGB18030 {
		t.Errorf("expected GB18030, got %s", enc)
	}
	if got != text {
		t.Errorf("decoded text mismatch: got %q", got)
	}
}

func TestDetect_Undecodable(t *testing.T) {
	// A lone GBK/GB18030 lead byte is invalid under every candidate.
	_, _, err := Detect([]byte{0x81})
	if err == nil {
		t.Fatal("expected error for undecodable bytes")
	}

	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected *EncodingError, got %T", err)
	}
	if len(encErr.Tried) == 0 {
		t.Error("expected the attempted encodings to be reported")
	}
}
