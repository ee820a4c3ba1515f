// Package main is the entry point for the LLL interpreter. It provides
// three modes of operation:
//  1. REPL mode (default): interactive read-eval-print loop
//  2. File mode: execute an LLL source file from the command line
//  3. Server mode: a TCP REPL server, one goroutine per connection
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/lll-lang/lll/builtin"
	"github.com/lll-lang/lll/env"
	"github.com/lll-lang/lll/eval"
	"github.com/lll-lang/lll/lexer"
	"github.com/lll-lang/lll/loader"
	"github.com/lll-lang/lll/object"
	"github.com/lll-lang/lll/parser"
	"github.com/lll-lang/lll/repl"
)

// VERSION is the current version of the LLL interpreter.
var VERSION = "v1.0.0"

// AUTHOR is the interpreter's maintainer contact.
var AUTHOR = "lll-lang maintainers"

// LICENSE is the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt shown in REPL mode.
var PROMPT = "lll >>> "

// BANNER is the ASCII art logo shown when starting the REPL.
var BANNER = `
  888      888      888
  888      888      888
  888      888      888
  888      888      888
  888      888      888
  88888888 88888888 88888888
`

// LINE is a separator used for visual formatting.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main dispatches to file execution, REPL, or server mode based on argv.
//
// Usage:
//
//	lll                 - start in REPL (interactive) mode
//	lll <filename>      - execute the specified LLL source file
//	lll server <port>   - start a TCP REPL server on the given port
//	lll --help          - display help information
//	lll --version       - display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		if arg == "server" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: lll server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("LLL - A Small Interpreted Scripting Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lll                    Start interactive REPL mode")
	yellowColor.Println("  lll <path-to-file>     Execute an LLL file (.lux)")
	yellowColor.Println("  lll server <port>      Start REPL server on the given port")
	yellowColor.Println("  lll --help             Display this help message")
	yellowColor.Println("  lll --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                  Exit the REPL")
}

func showVersion() {
	cyanColor.Println("LLL - A Small Interpreted Scripting Language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes an LLL source file, exiting the process with a
// non-zero status on any parse or runtime error.
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}
	executeFileWithRecovery(fileName, string(fileContent))
}

// startServer listens on port, handing each accepted connection its own
// REPL session in a dedicated goroutine.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("LLL REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}

// executeFileWithRecovery lexes, parses, and evaluates source as one
// top-level program, wiring in the module loader so `import` statements
// resolve relative to fileName.
func executeFileWithRecovery(fileName, source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	toks := lexer.Tokenize(source)
	p := parser.New(toks, fileName)
	prog, perr := p.ParseProgram()
	if perr != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", perr.Error())
		os.Exit(1)
	}

	global := env.New(nil)
	output := &[]string{}
	builtin.Populate(global, output)
	ld := loader.New(global, output)
	evaluator := eval.New(fileName, global, output, ld.Import)

	result := evaluator.EvalProgram(prog)

	for _, line := range *output {
		fmt.Fprintln(os.Stdout, line)
	}

	if errObj, ok := result.(*object.Error); ok {
		redColor.Fprintf(os.Stderr, "%s\n", errObj.FullString())
		os.Exit(1)
	}
}
