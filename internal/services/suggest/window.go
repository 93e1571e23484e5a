package suggest

// MaxContextLength bounds the pre-cursor text sent for auto-completion.
// Earlier context is discarded, not summarized; the bound caps request
// payload size and the latency/cost of the remote call.
const MaxContextLength = 2000

// TruncateContext returns at most the trailing MaxContextLength bytes of
// the text preceding the cursor. Shorter input is returned unchanged.
func TruncateContext(precedingText string) string {
	if len(precedingText) <= MaxContextLength {
		return precedingText
	}
	return precedingText[len(precedingText)-MaxContextLength:]
}
