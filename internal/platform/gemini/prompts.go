package gemini

import (
	"fmt"

	"github.com/phrazzld/tutor-api/internal/domain"
)

// depthInstructions augment the explanation prompt per depth tier.
var depthInstructions = map[domain.Depth]string{
	domain.DepthBrief:        "Provide a concise 2-3 paragraph explanation suitable for quick reference.",
	domain.DepthIntermediate: "Provide a moderate explanation with key concepts, examples, and use cases in 4-6 paragraphs.",
	domain.DepthComprehensive: `Provide an in-depth explanation covering:
1. Introduction and definition
2. Mathematical foundations (with LaTeX notation where appropriate)
3. How it works step-by-step
4. Key components/variants
5. Practical applications
6. Advantages and limitations
7. Related concepts`,
}

// complexityInstructions augment the code prompt per complexity tier.
var complexityInstructions = map[domain.Complexity]string{
	domain.ComplexityBasic:        "Simple implementation with minimal dependencies, focusing on core concept.",
	domain.ComplexityIntermediate: "Complete implementation with proper structure, comments, and visualization.",
	domain.ComplexityAdvanced:     "Production-ready code with error handling, optimization, and comprehensive documentation.",
}

// diagramInstructions augment the image prompt per diagram type.
var diagramInstructions = map[domain.DiagramType]string{
	domain.DiagramArchitecture:  "Create a clear system/neural network architecture diagram showing components and data flow.",
	domain.DiagramFlowchart:     "Create a step-by-step flowchart showing the algorithm or process flow.",
	domain.DiagramConceptMap:    "Create a concept map showing relationships between related ideas.",
	domain.DiagramVisualization: "Create a data visualization or mathematical illustration of the concept.",
}

func explanationPrompt(topic string, depth domain.Depth) string {
	instructions, ok := depthInstructions[depth]
	if !ok {
		instructions = depthInstructions[domain.DefaultDepth]
	}

	return fmt.Sprintf(`You are an expert Machine Learning educator. Generate a clear, educational explanation about:

**Topic:** %s

**Depth Level:** %s
%s

Format your response in clean Markdown with:
- Clear section headers using ##
- Code snippets where relevant (use `+"```python"+`)
- Mathematical expressions where appropriate
- Bullet points for lists
- Bold for key terms

Make the content accessible yet technically accurate. Use analogies where helpful.`, topic, depth, instructions)
}

func codePrompt(topic string, complexity domain.Complexity) string {
	instructions, ok := complexityInstructions[complexity]
	if !ok {
		instructions = complexityInstructions[domain.DefaultComplexity]
	}

	return fmt.Sprintf(`You are an expert Python developer specializing in Machine Learning. Generate working Python code for:

**Topic:** %s

**Complexity:** %s
%s

Requirements:
1. Write complete, runnable Python code
2. Include detailed comments explaining each section
3. Add docstrings for functions/classes
4. Include example usage with sample data
5. Add visualization where appropriate (matplotlib/seaborn)
6. Print meaningful output to demonstrate functionality

Format:
- Start with necessary imports
- Include a main() function or if __name__ == "__main__": block
- Make code Google Colab compatible

Return ONLY the Python code without any markdown formatting or explanation outside the code.`, topic, complexity, instructions)
}

func audioScriptPrompt(topic string) string {
	return fmt.Sprintf(`You are creating an educational audio lesson about Machine Learning. Generate a conversational, spoken explanation about:

**Topic:** %s

Requirements:
1. Write as if speaking to a student - natural, conversational tone
2. Avoid visual references (no "as you can see", "in the diagram")
3. Use clear transitions between ideas
4. Keep sentences moderate length for TTS clarity
5. Include pauses by using periods appropriately
6. Explain complex terms when first introduced
7. Target length: 3-5 minutes of speaking time (roughly 500-800 words)

Write ONLY the spoken script without stage directions or formatting.`, topic)
}

func imagePromptRequest(topic string, diagramType domain.DiagramType) string {
	instructions, ok := diagramInstructions[diagramType]
	if !ok {
		instructions = diagramInstructions[domain.DefaultDiagramType]
	}

	return fmt.Sprintf(`Create a detailed prompt for generating an educational diagram about:

**Topic:** %s
**Diagram Type:** %s

%s

The prompt should describe:
1. Layout and structure
2. Key components to include
3. Labels and annotations
4. Color scheme (professional, educational style)
5. Visual style (clean, modern, technical)

Return a single detailed paragraph that can be used for image generation.`, topic, diagramType, instructions)
}

// enhanceImagePrompt wraps a diagram description with the fixed style
// directives every generated diagram shares.
func enhanceImagePrompt(prompt string) string {
	return fmt.Sprintf(`Create a professional educational diagram:

%s

Style requirements:
- Clean, modern technical illustration style
- Professional color scheme (blues, teals, grays)
- Clear labels and annotations
- White or light background
- High contrast for readability
- No text errors or gibberish
`, prompt)
}
