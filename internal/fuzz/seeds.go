package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var builtinSeeds = []string{
	"",
	"2 + 3",
	"x * 5 - 3",
	"- 5",
	"5 -",
	"/* a /* b */ c */ x",
	"/** doc */ //! inner\n/// outer\n////plain",
	"'a' '\\'' \"str\" \"open",
	"/* never closed",
	"a_b ` 日本   x",
	"x\x00y",
	"99999999999999999999 + 1",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// testdataRoot is the repository corpus of sample sources.
var testdataRoot = filepath.Join("..", "..", "testdata")

func addTestdataSeeds(f *testing.F) {
	files, err := testdataFiles()
	if err != nil {
		f.Fatalf("testdata: %v", err)
	}
	for _, path := range files {
		// #nosec G304 -- path comes from the repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			f.Fatalf("read %s: %v", path, err)
		}
		f.Add(clamp(src, maxSeedBytes))
	}
}

// testdataFiles lists every *.expr under testdata, in walk order.
func testdataFiles() ([]string, error) {
	var files []string
	err := filepath.WalkDir(testdataRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && filepath.Ext(path) == ".expr" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func clamp(src []byte, limit int) []byte {
	if len(src) <= limit {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:limit]...)
}
