package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/tutor-api/internal/codescan"
	"github.com/phrazzld/tutor-api/internal/domain"
	"github.com/phrazzld/tutor-api/internal/generation"
	"github.com/phrazzld/tutor-api/internal/store"
)

// timestampLayout names generated artifacts down to the second; the file
// store resolves same-second collisions with a numeric suffix.
const timestampLayout = "20060102_150405"

// colabPreinstalled are the packages Google Colab ships with; they are
// excluded from the notebook install snippet.
var colabPreinstalled = map[string]struct{}{
	"numpy": {}, "pandas": {}, "matplotlib": {}, "seaborn": {},
	"scikit-learn": {}, "tensorflow": {}, "keras": {},
}

// CodeResult is the outcome of a code generation request.
type CodeResult struct {
	Code         string
	Dependencies domain.DependencyReport
	ColabSetup   string
	LocalSetup   string
	LineCount    int
	Filename     string
	DownloadURL  string
}

// CodeService generates Python examples, infers their dependencies, builds
// setup instructions, and persists the code to the output directory.
type CodeService struct {
	logger    *slog.Logger
	generator generation.ContentGenerator
	files     *store.FileStore
	now       func() time.Time
}

// NewCodeService creates a CodeService.
func NewCodeService(logger *slog.Logger, generator generation.ContentGenerator, files *store.FileStore) *CodeService {
	return &CodeService{
		logger:    logger,
		generator: generator,
		files:     files,
		now:       time.Now,
	}
}

// Generate produces a code example for the topic at the given complexity.
// A file-save failure is reported in the result (empty DownloadURL), not as
// an error; the generated code is still returned to the caller.
func (s *CodeService) Generate(ctx context.Context, topic string, complexity domain.Complexity) (*CodeResult, error) {
	code, err := s.generator.GenerateCodeExample(ctx, topic, complexity)
	if err != nil {
		return nil, err
	}

	report := codescan.Detect(code)

	result := &CodeResult{
		Code:         code,
		Dependencies: report,
		ColabSetup:   colabSetup(report.PipPackages),
		LocalSetup:   localSetup(report.PipPackages),
		LineCount:    len(strings.Split(code, "\n")),
	}

	info, err := s.saveCodeFile(code, topic)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save generated code",
			"topic", topic,
			"error", err)
		return result, nil
	}
	result.Filename = info.Filename
	result.DownloadURL = info.RelativePath

	s.logger.InfoContext(ctx, "generated code example",
		"topic", topic,
		"complexity", complexity,
		"line_count", result.LineCount,
		"packages", len(report.PipPackages),
		"filename", info.Filename)

	return result, nil
}

// saveCodeFile writes the code with the fixed header comment to a
// timestamped file under the code output directory.
func (s *CodeService) saveCodeFile(code, topic string) (store.FileInfo, error) {
	now := s.now()
	filename := fmt.Sprintf("%s_%s.py", domain.Slug(topic), now.Format(timestampLayout))

	header := fmt.Sprintf(`"""
Generated by tutor-api - AI ML Learning Assistant
Topic: %s
Generated: %s
"""

`, topic, now.Format("2006-01-02 15:04:05"))

	return s.files.Save(store.KindCode, filename, []byte(header+code))
}

// colabSetup builds the Google Colab setup notice for a package list.
func colabSetup(packages []string) string {
	if len(packages) == 0 {
		return "# No additional packages required - ready to run!"
	}

	var toInstall []string
	for _, pkg := range packages {
		if _, ok := colabPreinstalled[pkg]; !ok {
			toInstall = append(toInstall, pkg)
		}
	}
	if len(toInstall) == 0 {
		return "# All required packages are pre-installed in Google Colab!"
	}

	return fmt.Sprintf(`# Run this cell first to install required packages
!pip install %s

# Then run the main code below`, strings.Join(toInstall, " "))
}

// localSetup builds the local environment setup instructions for a package
// list.
func localSetup(packages []string) string {
	if len(packages) == 0 {
		return "No additional packages required."
	}

	return fmt.Sprintf(`## Local Setup Instructions

1. Create a virtual environment (recommended):
   `+"```bash"+`
   python -m venv ml_env
   source ml_env/bin/activate  # On Windows: ml_env\Scripts\activate
   `+"```"+`

2. Install required packages:
   `+"```bash"+`
   pip install %s
   `+"```"+`

3. Run the code:
   `+"```bash"+`
   python your_script.py
   `+"```", strings.Join(packages, " "))
}
