package domain

import (
	"strings"
	"unicode"
)

// Depth selects how detailed a generated text explanation should be.
type Depth string

const (
	DepthBrief         Depth = "brief"
	DepthIntermediate  Depth = "intermediate"
	DepthComprehensive Depth = "comprehensive"
)

// DefaultDepth is substituted for unrecognized depth values.
const DefaultDepth = DepthComprehensive

// NormalizeDepth maps an arbitrary string to a recognized Depth,
// falling back to DefaultDepth for anything out of range.
func NormalizeDepth(s string) Depth {
	switch Depth(s) {
	case DepthBrief, DepthIntermediate, DepthComprehensive:
		return Depth(s)
	default:
		return DefaultDepth
	}
}

// Complexity selects how elaborate a generated code example should be.
type Complexity string

const (
	ComplexityBasic        Complexity = "basic"
	ComplexityIntermediate Complexity = "intermediate"
	ComplexityAdvanced     Complexity = "advanced"
)

// DefaultComplexity is substituted for unrecognized complexity values.
const DefaultComplexity = ComplexityIntermediate

// NormalizeComplexity maps an arbitrary string to a recognized Complexity,
// falling back to DefaultComplexity for anything out of range.
func NormalizeComplexity(s string) Complexity {
	switch Complexity(s) {
	case ComplexityBasic, ComplexityIntermediate, ComplexityAdvanced:
		return Complexity(s)
	default:
		return DefaultComplexity
	}
}

// DiagramType selects the kind of diagram requested from the image model.
type DiagramType string

const (
	DiagramArchitecture  DiagramType = "architecture"
	DiagramFlowchart     DiagramType = "flowchart"
	DiagramConceptMap    DiagramType = "concept_map"
	DiagramVisualization DiagramType = "visualization"
)

// DefaultDiagramType is substituted for unrecognized diagram type values.
const DefaultDiagramType = DiagramArchitecture

// NormalizeDiagramType maps an arbitrary string to a recognized DiagramType,
// falling back to DefaultDiagramType for anything out of range.
func NormalizeDiagramType(s string) DiagramType {
	switch DiagramType(s) {
	case DiagramArchitecture, DiagramFlowchart, DiagramConceptMap, DiagramVisualization:
		return DiagramType(s)
	default:
		return DefaultDiagramType
	}
}

// ValidateTopic trims surrounding whitespace and ensures the topic is
// non-empty. The trimmed topic is returned so callers use the canonical form.
func ValidateTopic(topic string) (string, error) {
	trimmed := strings.TrimSpace(topic)
	if trimmed == "" {
		return "", ErrEmptyTopic
	}
	return trimmed, nil
}

// slugMaxRunes bounds the topic portion of derived filenames.
const slugMaxRunes = 30

// Slug derives a filesystem-safe fragment from a topic: the first 30 runes
// with every non-alphanumeric rune replaced by an underscore.
func Slug(topic string) string {
	runes := []rune(topic)
	if len(runes) > slugMaxRunes {
		runes = runes[:slugMaxRunes]
	}
	var b strings.Builder
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// DependencyReport lists the imports found in a generated code sample and
// the pip packages they resolve to. InstallCommand is omitted when no
// packages are required.
type DependencyReport struct {
	Imports        []string `json:"imports"`
	PipPackages    []string `json:"pip_packages"`
	InstallCommand string   `json:"install_command,omitempty"`
}
