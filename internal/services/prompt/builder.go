package prompt

import (
	"fmt"
)

// Pair is a system/user message pair for one chat completion request.
// Pairs are ephemeral: constructed per request and never persisted.
type Pair struct {
	System string
	User   string
}

// MaxCompletionCandidates is the number of completion suggestions the
// model is asked for. This is prompt-level guidance; the response parser
// enforces its own cap on the fallback path.
const MaxCompletionCandidates = 5

// ForQuestion builds the free-form question pair. The system prompt pins
// the assistant role and the target language's formatting conventions;
// the user prompt carries the question followed by the full code context.
func ForQuestion(question, codeContext, language string) Pair {
	return Pair{
		System: fmt.Sprintf(
			"You are a programming assistant embedded in a code editor. "+
				"Answer questions about the user's code. "+
				"Follow %s formatting conventions in any code you produce.",
			language),
		User: fmt.Sprintf("%s\n\nHere is my code:\n%s", question, codeContext),
	}
}

// ForCompileFix wraps a raw compiler error in a fix request and delegates
// to the free-form builder.
func ForCompileFix(compilerError, codeContext, language string) Pair {
	question := fmt.Sprintf(
		"Please analyze this compiler error and suggest a fix:\n%s", compilerError)
	return ForQuestion(question, codeContext, language)
}

// ForSelection builds the highlighted-snippet question. The snippet is
// folded into the question while the full document stays as code context,
// so the model keeps the surrounding code in view.
func ForSelection(question, selectedText, fullDocument, language string) Pair {
	combined := fmt.Sprintf("%s\n\nHighlighted code:\n%s", question, selectedText)
	return ForQuestion(combined, fullDocument, language)
}

// ForCompletion builds the inline auto-completion pair from the truncated
// pre-cursor context.
func ForCompletion(truncatedContext, language string) Pair {
	return Pair{
		System: fmt.Sprintf(
			"You are a %s code completion engine. "+
				"Return only a minimal snippet that completes the current line. "+
				"No explanations, no surrounding prose.",
			language),
		User: fmt.Sprintf(
			"Given the code before the cursor:\n```\n%s\n```\n"+
				"Suggest up to %d candidate completions as a JSON array of strings, "+
				"ordered from most to least likely.",
			truncatedContext, MaxCompletionCandidates),
	}
}
