package domain

// DefaultPrompt is the primary prompt shown before any breadcrumb.
const DefaultPrompt = "> "

// Prompt holds the console's echo prompts. Primary is fixed for the life of
// the console; Breadcrumb accumulates the accepted inputs of the current
// instruction chain and resets whenever a new chain begins.
type Prompt struct {
	Primary    string
	Breadcrumb string
}

// NewPrompt returns a prompt with the given primary and an empty breadcrumb.
func NewPrompt(primary string) Prompt {
	if primary == "" {
		primary = DefaultPrompt
	}
	return Prompt{Primary: primary}
}

// Push appends an accepted input to the breadcrumb.
func (p *Prompt) Push(text string) {
	p.Breadcrumb += text + " > "
}

// Reset drops the breadcrumb, keeping the primary prompt.
func (p *Prompt) Reset() {
	p.Breadcrumb = ""
}

// Render returns the full prompt line for a given request text.
func (p *Prompt) Render(request string) string {
	return p.Primary + p.Breadcrumb + request
}
