package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB

// inlineSeeds cover the try statement shapes the gap printer cares about.
var inlineSeeds = []string{
	"",
	"try { return true; } catch (e) {}",
	"try { a(); } catch (e) { b(); } finally { c(); }",
	"try { const x = 1; } catch(e) {}",
	"try { const a = 1; const b = 2; return a + b; } catch(e) {}",
	"try {} catch(e) {}",
	"try { if (condition) { try { work(); } catch (e) {} } } catch(e) {}",
	"function outer() { try { const inner = () => { try { innerWork(); } catch (e) {} }; } catch(e) {} }",
	"try { // start work\n const a = 1; } catch(e) {}",
	"try { /* dangling comment */ } catch(e) {}",
	"try { \"use strict\"; work(); } catch(e) {}",
	"try { a(); } finally { b(); }",
	"try { a();\n\n b(); } catch { c(); }",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every *.js file under testdata.
func addTestdataSeeds(f *testing.F) {
	root := "testdata"
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".js" {
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

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
