package repl

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"exprc/internal/driver"
	"exprc/internal/lexer"
)

const (
	historyFile = ".exprc_history"
	promptMain  = "expr> "
	promptCont  = "....> "
)

// LineReader is the part of *liner.State the loop needs.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Config configures Start.
type Config struct {
	Options driver.Options
	Color   bool
	// HistoryPath defaults to ~/.exprc_history. "-" disables history.
	HistoryPath string
}

// Start runs the loop on the terminal until :quit or EOF.
func Start(ctx context.Context, out io.Writer, cfg Config) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryPath
	if histPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			histPath = filepath.Join(home, historyFile)
		}
	}
	if histPath != "" && histPath != "-" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	return Run(ctx, ln, NewSession(out, cfg.Options, cfg.Color))
}

// Run reads entries from r until :quit, EOF or ctx is done.
func Run(ctx context.Context, r LineReader, s *Session) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		entry, ok, err := ReadEntry(r, promptMain, promptCont)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if strings.TrimSpace(entry) == "" {
			continue
		}
		r.AppendHistory(strings.ReplaceAll(entry, "\n", " "))
		if s.Eval(ctx, entry) {
			return nil
		}
	}
}

// ReadEntry reads one entry, prompting with cont while the text so far ends
// inside an unterminated block comment or string. ok is false on EOF.
// Ctrl-C drops the partial entry.
func ReadEntry(r LineReader, prompt, cont string) (entry string, ok bool, err error) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := r.Prompt(p)
		switch {
		case errors.Is(err, io.EOF):
			if b.Len() > 0 {
				return b.String(), true, nil
			}
			return "", false, nil
		case errors.Is(err, liner.ErrPromptAborted):
			return "", true, nil
		case err != nil:
			return "", false, err
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || !lexer.Incomplete(lexer.Tokenize(src)) {
			return src, true, nil
		}
	}
}
