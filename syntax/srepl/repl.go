package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/pie/ast"
	"github.com/npillmayer/pie/syntax"
	"github.com/npillmayer/pie/syntax/scanner"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

const (
	prompt             = "pie> "
	continuationPrompt = "...> "
)

// main() starts an interactive CLI ("S.REPL"), where users may enter Pie
// s-expressions. S.REPL will parse them and print out the syntax tree.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	maxdepth := flag.Int("maxdepth", 0, "Maximum nesting depth of lists (0 = default)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to S.REPL")   // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	parser := syntax.NewParser()
	if *maxdepth > 0 {
		parser.MaxDepth = *maxdepth
	}
	repl, err := readline.New(prompt)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{
		parser: parser,
		repl:   repl,
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if err := intp.Eval(input); err != nil {
			os.Exit(2)
		}
	}
	//
	// load an init file and start receiving s-expressions
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	parser   *syntax.Parser
	repl     *readline.Instance
	pending  lineBuffer
	lastTree ast.Expr
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	var buf lineBuffer
	lines := bufio.NewScanner(f)
	lineno := 0
	for lines.Scan() {
		lineno++
		text, complete := buf.Feed(lines.Text())
		if !complete {
			continue
		}
		if err := intp.Eval(text); err != nil {
			tracer().Errorf("Error near line %d: %v", lineno, err)
		}
	}
	if rest := buf.Flush(); rest != "" {
		tracer().Errorf("Init file ends with unbalanced input")
		intp.Eval(rest)
	}
	if err := lines.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == ":quit" && intp.pending.Empty() {
			break
		}
		text, complete := intp.pending.Feed(line)
		if !complete {
			intp.repl.SetPrompt(continuationPrompt)
			continue
		}
		intp.repl.SetPrompt(prompt)
		intp.Eval(text) // errors have been displayed by Eval
	}
	println("Good bye!")
}

// Eval parses one or more Pie s-exprs and displays their syntax trees.
func (intp *Intp) Eval(text string) error {
	tracer().Infof("----------------------- Parse ------------------------------------")
	exprs, err := intp.parser.ParseAll(text)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	for _, e := range exprs {
		intp.lastTree = e
		tracer().Infof("-------------------------- Tree ----------------------------------")
		pterm.DefaultTree.WithRoot(treeFrom(e)).Render()
		if h, err := ast.Fingerprint(e); err == nil {
			tracer().Debugf("fingerprint %s", h)
		}
		pterm.Info.Println(ast.String(e))
	}
	return nil
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

// --- Multi-line input ------------------------------------------------------

// lineBuffer collects lines of input until they form a balanced text.
type lineBuffer struct {
	lines []string
}

// Feed adds a line. If the collected input has no open parentheses left, it is
// returned and the buffer is reset. Input which the scanner does not understand
// or which closes too many parentheses counts as complete, to let the parser
// report the problem.
func (lb *lineBuffer) Feed(line string) (string, bool) {
	if strings.TrimSpace(line) == "" && lb.Empty() {
		return "", false
	}
	lb.lines = append(lb.lines, line)
	text := strings.Join(lb.lines, "\n")
	depth, err := scanner.Balance(text)
	if err == nil && depth > 0 {
		tracer().Debugf("%d lists still open", depth)
		return "", false
	}
	lb.lines = lb.lines[:0]
	return text, true
}

// Flush returns whatever input has been collected and resets the buffer.
func (lb *lineBuffer) Flush() string {
	text := strings.Join(lb.lines, "\n")
	lb.lines = lb.lines[:0]
	return strings.TrimSpace(text)
}

// Empty is true if no incomplete input is pending.
func (lb *lineBuffer) Empty() bool {
	return len(lb.lines) == 0
}

// --- Tree display ----------------------------------------------------------

func treeFrom(e ast.Expr) pterm.TreeNode {
	ll := leveledExpr(e, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d", len(ll))
	return pterm.NewTreeFromLeveledList(ll)
}

func leveledExpr(e ast.Expr, ll pterm.LeveledList, level int) pterm.LeveledList {
	switch x := e.(type) {
	case *ast.List:
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  fmt.Sprintf("list [%d]", x.Len()),
		})
		for _, el := range x.Elements {
			ll = leveledExpr(el, ll, level+1)
		}
	default:
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  fmt.Sprintf("%s %s", e.Kind(), e.String()),
		})
	}
	return ll
}
