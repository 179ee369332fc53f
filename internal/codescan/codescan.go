// Package codescan infers pip dependencies from generated Python code by
// scanning import statements. It is a pure text scanner with no I/O, so the
// mapping from code text to a dependency report is deterministic and
// idempotent.
package codescan

import (
	"regexp"
	"sort"
	"strings"

	"github.com/phrazzld/tutor-api/internal/domain"
)

// importPatterns match the first identifier of "import x" and "from x
// import y" statements at the start of a line.
var importPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^import\s+(\w+)`),
	regexp.MustCompile(`^from\s+(\w+)`),
}

// knownPackages maps common import names and aliases to their pip package
// names. Unknown imports that are not standard library pass through
// verbatim.
var knownPackages = map[string]string{
	"numpy":        "numpy",
	"np":           "numpy",
	"pandas":       "pandas",
	"pd":           "pandas",
	"matplotlib":   "matplotlib",
	"plt":          "matplotlib",
	"seaborn":      "seaborn",
	"sns":          "seaborn",
	"sklearn":      "scikit-learn",
	"tensorflow":   "tensorflow",
	"tf":           "tensorflow",
	"keras":        "keras",
	"torch":        "torch",
	"cv2":          "opencv-python",
	"PIL":          "Pillow",
	"scipy":        "scipy",
	"xgboost":      "xgboost",
	"lightgbm":     "lightgbm",
	"nltk":         "nltk",
	"spacy":        "spacy",
	"transformers": "transformers",
	"datasets":     "datasets",
	"tqdm":         "tqdm",
	"requests":     "requests",
	"bs4":          "beautifulsoup4",
	"networkx":     "networkx",
}

// stdlibModules is the set of Python standard library module names that
// never map to a pip package.
var stdlibModules = map[string]struct{}{
	"os": {}, "sys": {}, "math": {}, "random": {}, "time": {}, "datetime": {},
	"json": {}, "collections": {}, "itertools": {}, "functools": {},
	"typing": {}, "re": {}, "copy": {}, "pickle": {}, "csv": {}, "io": {},
	"string": {}, "textwrap": {}, "struct": {}, "codecs": {},
	"unicodedata": {}, "warnings": {}, "logging": {}, "abc": {},
	"contextlib": {}, "pathlib": {}, "tempfile": {}, "shutil": {},
	"argparse": {}, "configparser": {}, "hashlib": {}, "secrets": {},
	"threading": {}, "multiprocessing": {}, "queue": {}, "asyncio": {},
	"unittest": {}, "doctest": {}, "pdb": {}, "timeit": {}, "statistics": {},
	"dataclasses": {}, "enum": {}, "numbers": {}, "decimal": {},
	"fractions": {},
}

// Detect scans code text line by line for import statements and builds a
// dependency report: every imported module name, the pip packages they
// resolve to, and a single install command. Both lists are deduplicated and
// sorted; the install command is empty when no packages are required.
func Detect(code string) domain.DependencyReport {
	imports := make(map[string]struct{})
	pipPackages := make(map[string]struct{})

	for _, line := range strings.Split(code, "\n") {
		line = strings.TrimSpace(line)
		for _, pattern := range importPatterns {
			match := pattern.FindStringSubmatch(line)
			if match == nil {
				continue
			}
			module := match[1]
			imports[module] = struct{}{}

			if pkg, ok := knownPackages[module]; ok {
				pipPackages[pkg] = struct{}{}
			} else if !isStdlib(module) {
				pipPackages[module] = struct{}{}
			}
		}
	}

	report := domain.DependencyReport{
		Imports:     sortedKeys(imports),
		PipPackages: sortedKeys(pipPackages),
	}
	if len(report.PipPackages) > 0 {
		report.InstallCommand = "pip install " + strings.Join(report.PipPackages, " ")
	}
	return report
}

func isStdlib(module string) bool {
	_, ok := stdlibModules[module]
	return ok
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
