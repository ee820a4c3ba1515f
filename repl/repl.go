// Package repl implements the Read-Eval-Print Loop for the LLL interpreter.
// The REPL provides an interactive environment where users can:
//   - Enter LLL code line by line, including multi-line if/while/for/func/try
//     blocks
//   - See immediate output and results
//   - Navigate command history using arrow keys
//   - Receive colored feedback for different kinds of output
//
// The REPL uses the readline library for line editing and integrates with
// the lexer/parser/eval/loader/builtin pipeline to execute user input.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/lll-lang/lll/builtin"
	"github.com/lll-lang/lll/env"
	"github.com/lll-lang/lll/eval"
	"github.com/lll-lang/lll/lexer"
	"github.com/lll-lang/lll/loader"
	"github.com/lll-lang/lll/object"
	"github.com/lll-lang/lll/parser"
)

// Color definitions for REPL output. These provide visual feedback:
// - blueColor: decorative lines and separators
// - yellowColor: expression results
// - redColor: error messages
// - greenColor: banner
// - cyanColor: informational messages and freshly printed output lines
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl encapsulates the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Interpreter version string
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Primary prompt (e.g. "lll >>> ")
}

// NewRepl creates a new REPL instance.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to LLL!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Blocks (if/while/for/func/try) may span multiple lines; keep typing until 'end'")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// session holds the state that persists across lines typed into one REPL
// connection: a single global environment, output buffer, and loader, so
// that bindings declared on one line are visible to later lines (mirroring
// the teacher's single long-lived Evaluator per REPL session).
type session struct {
	global *env.Environment
	output *[]string
	ld     *loader.Loader
	ev     *eval.Evaluator
}

func newSession() *session {
	global := env.New(nil)
	output := &[]string{}
	builtin.Populate(global, output)
	ld := loader.New(global, output)
	return &session{
		global: global,
		output: output,
		ld:     ld,
		ev:     eval.New("<repl>", global, output, ld.Import),
	}
}

// blockDepthDelta scans a line's tokens for the opening keywords that each
// require exactly one matching `end` (if/while/for/func/try — `then`, `do`,
// `else`, and `catch` never add their own `end`, and an `if` directly after
// `else` shares the enclosing if's `end`, per spec.md's block-boundary
// grammar), minus any `end` tokens on the line.
func blockDepthDelta(line string) int {
	delta := 0
	var prev lexer.Type
	for _, tok := range lexer.Tokenize(line) {
		switch tok.Type {
		case lexer.IF_KEY:
			if prev != lexer.ELSE_KEY {
				delta++
			}
		case lexer.WHILE_KEY, lexer.FOR_KEY, lexer.FUNC_KEY, lexer.TRY_KEY:
			delta++
		case lexer.END_KEY:
			delta--
		}
		prev = tok.Type
	}
	return delta
}

// Start begins the REPL main loop. reader/writer let the same implementation
// back both an interactive stdin/stdout session and a networked connection
// (see cmd/lll's server mode).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
	})
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	sess := newSession()

	var pending []string
	depth := 0

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		trimmed := strings.Trim(line, " \t\r")

		if depth == 0 {
			if trimmed == "" {
				continue
			}
			if trimmed == ".exit" {
				writer.Write([]byte("Good Bye!\n"))
				return
			}
		}

		rl.SaveHistory(line)
		pending = append(pending, line)
		depth += blockDepthDelta(line)

		if depth > 0 {
			rl.SetPrompt(strings.Repeat(" ", len(r.Prompt)))
			continue
		}

		source := strings.Join(pending, "\n")
		pending = nil
		depth = 0
		rl.SetPrompt(r.Prompt)

		r.executeWithRecovery(writer, source, sess)
	}
}

// executeWithRecovery lexes, parses, and evaluates one accumulated block,
// printing any newly produced output lines and the final result or error.
// Unlike file mode, the REPL survives errors and keeps the session alive.
func (r *Repl) executeWithRecovery(writer io.Writer, source string, sess *session) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	before := len(*sess.output)

	toks := lexer.Tokenize(source)
	p := parser.New(toks, "<repl>")
	prog, perr := p.ParseProgram()
	if perr != nil {
		redColor.Fprintf(writer, "[PARSE ERROR] %s\n", perr.Error())
		return
	}

	result := sess.ev.EvalProgram(prog)

	for _, outLine := range (*sess.output)[before:] {
		cyanColor.Fprintf(writer, "%s\n", outLine)
	}

	if errObj, ok := result.(*object.Error); ok {
		redColor.Fprintf(writer, "%s\n", errObj.FullString())
		return
	}

	if result != nil && result.GetType() != object.NilType {
		yellowColor.Fprintf(writer, "%s\n", result.ToString())
	}
}
