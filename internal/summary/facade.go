package summary

import (
	"context"
	"fmt"

	"github.com/planetpulse/globaltwin/internal/digest"
)

// MaxInputChars bounds the digest blob submitted to the model. Truncation
// happens once, at a character boundary, before any panel is generated.
const MaxInputChars = 1024

// AgentLabels are the six fixed panel labels. Every panel runs the same
// underlying summarization over the same input; the labels are purely
// cosmetic and deliberately kept as data rather than separate code paths.
var AgentLabels = []string{
	"LangChain Agent",
	"LlamaIndex Agent",
	"Haystack Agent",
	"HuggingFace Agent",
	"AutoGen Agent",
	"Rasa Agent",
}

// Panel is one labeled summary shown in the AI summary section.
type Panel struct {
	Label   string `json:"label"`
	Summary string `json:"summary"`
}

// Facade fans one digest blob out into the six labeled agent panels. The
// summarization client is injected at construction so its lifecycle is
// explicit and tests can substitute a stub.
type Facade struct {
	client Client
}

func NewFacade(client Client) *Facade {
	return &Facade{client: client}
}

// Panels truncates the blob, invokes the underlying summarization once per
// label, and prefixes each result with its label. A failed call aborts the
// whole panel set; there is no fallback text.
func (f *Facade) Panels(ctx context.Context, blob string) ([]Panel, error) {
	input := digest.Truncate(blob, MaxInputChars)

	panels := make([]Panel, 0, len(AgentLabels))
	for _, label := range AgentLabels {
		text, err := f.client.Summarize(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("summarize panel %q: %w", label, err)
		}
		panels = append(panels, Panel{
			Label:   label,
			Summary: label + ": " + text,
		})
	}
	return panels, nil
}
