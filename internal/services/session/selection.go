package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/YazanYahya/codex/internal/services/prompt"
	"github.com/rs/zerolog/log"
)

// AskSelection runs a question about the highlighted code through the
// same controller path as a free-form question. The visible user message
// carries the snippet inline; the prompt keeps the full document as code
// context so the model retains the surroundings. A no-op when either the
// selection or the question is empty.
func (c *Controller) AskSelection(ctx context.Context, question string) bool {
	selection := c.workspace.SelectionText()
	if strings.TrimSpace(selection) == "" || strings.TrimSpace(question) == "" {
		log.Debug().Msg("Selection query requires both a selection and a question")
		return false
	}

	document := c.workspace.DocumentText()
	userContent := fmt.Sprintf("%s\n\n```\n%s\n```", question, selection)
	return c.dispatch(ctx, userContent, func(language string) prompt.Pair {
		return prompt.ForSelection(question, selection, document, language)
	}, false)
}
