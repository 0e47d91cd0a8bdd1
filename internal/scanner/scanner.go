package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// languageByExtension maps file extensions to extractor language ids.
var languageByExtension = map[string]string{
	".py":   "python",
	".js":   "javascript",
	".mjs":  "javascript",
	".cjs":  "javascript",
	".ts":   "typescript",
	".tsx":  "tsx",
	".java": "java",
	".cs":   "csharp",
	".go":   "go",
	".rb":   "ruby",
	".rs":   "rust",
	".c":    "c",
	".h":    "c",
	".php":  "php",
}

// DetectLanguage maps a file path to a supported language id by extension.
func DetectLanguage(path string) (string, bool) {
	lang, ok := languageByExtension[strings.ToLower(filepath.Ext(path))]
	return lang, ok
}

// compiledPattern holds both the pattern string and compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Scanner discovers extractable source files under a root directory,
// filtered by include and ignore glob patterns.
type Scanner struct {
	rootDir         string
	includePatterns []compiledPattern
	ignorePatterns  []compiledPattern
}

// New compiles the glob patterns and returns a scanner. An empty include
// list means every file with a detectable language is a candidate.
func New(rootDir string, includePatterns, ignorePatterns []string) (*Scanner, error) {
	s := &Scanner{rootDir: rootDir}

	for _, pattern := range includePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		s.includePatterns = append(s.includePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		s.ignorePatterns = append(s.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	return s, nil
}

// Discover walks the root directory and returns the matching source files in
// walk order.
func (s *Scanner) Discover() ([]string, error) {
	files := []string{}

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(s.rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if s.ShouldIgnore(relPath) {
			return nil
		}
		if !s.matchesInclude(relPath) {
			return nil
		}
		if _, ok := DetectLanguage(path); !ok {
			return nil
		}

		files = append(files, path)
		return nil
	})

	return files, err
}

// ShouldIgnore reports whether a slash-normalized relative path matches any
// ignore pattern, either directly or as a directory prefix.
func (s *Scanner) ShouldIgnore(relPath string) bool {
	if s.matchesAnyPattern(relPath, s.ignorePatterns) {
		return true
	}

	// A directory pattern like "node_modules/**" should also suppress the
	// directory itself.
	return s.matchesAnyPattern(relPath+"/**", s.ignorePatterns)
}

// Matches reports whether a slash-normalized relative path passes the
// include/ignore filters.
func (s *Scanner) Matches(relPath string) bool {
	return !s.ShouldIgnore(relPath) && s.matchesInclude(relPath)
}

func (s *Scanner) matchesInclude(relPath string) bool {
	if len(s.includePatterns) == 0 {
		return true
	}
	return s.matchesAnyPattern(relPath, s.includePatterns)
}

func (s *Scanner) matchesAnyPattern(path string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
	}

	// "**/*.py" should match a root-level "main.py" too; glob's ** requires
	// at least one separator, so retry with the prefix stripped.
	if !strings.Contains(path, "/") {
		for _, cp := range patterns {
			if strings.HasPrefix(cp.pattern, "**/") {
				simplified := strings.TrimPrefix(cp.pattern, "**/")
				if g, err := glob.Compile(simplified, '/'); err == nil && g.Match(path) {
					return true
				}
			}
		}
	}

	return false
}
