package fuzztests

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addLanguageSeeds(f)
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
}

var builtinSeeds = []string{
	"",
	"~ x = 1;",
	"*int x;",
	"int x;",
	"1.2.3",
	"\"abc",
	"~ s = \"\\u00e9\\u12zz\";",
	"^ std/\"io\";",
	"int main(a: int, b = 2) { a + b }",
	"@void m(x) { }",
	"~ x = a ? { 1 } : b ? 2 : 3;",
	"~ x = foo.bar(1, (2, 3)).baz;",
	"int f() { *int y; y = 1; y",
	"~ a = (((;",
	"$$$ ~ x = 1; ###",
	"~ x = 1; ~ x = 2;",
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.core файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".core" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

// addLanguageSeeds берёт ```core блоки из LANGUAGE.md.
func addLanguageSeeds(f *testing.F) {
	docPath := filepath.Join("..", "..", "LANGUAGE.md")
	// #nosec G304 -- path is a fixed repository location
	data, err := os.ReadFile(docPath)
	if err != nil {
		return
	}
	var block [][]byte
	inBlock := false
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		trimmed := strings.TrimSpace(string(line))
		if strings.HasPrefix(trimmed, "```core") {
			inBlock = true
			block = block[:0]
			continue
		}
		if strings.HasPrefix(trimmed, "```") {
			if inBlock {
				if snippet := clampSeed(bytes.Join(block, []byte{'\n'})); len(snippet) > 0 {
					f.Add(snippet)
				}
			}
			inBlock = false
			block = block[:0]
			continue
		}
		if inBlock {
			block = append(block, line)
		}
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
