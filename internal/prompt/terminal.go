package prompt

import "github.com/chzyer/readline"

// DefaultPrompt is the text shown when asking for a menu selection.
const DefaultPrompt = "Enter the number for the desired resolution: "

// TerminalReader is the interactive LineReader backed by readline. It owns
// the terminal state and must be closed after use.
type TerminalReader struct {
	rl *readline.Instance
}

// NewTerminalReader initializes a readline instance with the given prompt.
func NewTerminalReader(promptText string) (*TerminalReader, error) {
	rl, err := readline.New(promptText)
	if err != nil {
		return nil, err
	}
	return &TerminalReader{rl: rl}, nil
}

// ReadLine reads one line from the terminal, redrawing the prompt.
func (t *TerminalReader) ReadLine() (string, error) {
	return t.rl.Readline()
}

// Close restores the terminal state.
func (t *TerminalReader) Close() error {
	return t.rl.Close()
}
