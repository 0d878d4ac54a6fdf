package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/widestr/utf8scan"
	"github.com/npillmayer/widestr/wide"
	"github.com/pterm/pterm"
)

// tracer traces with key 'text.widestr'
func tracer() tracing.Trace {
	return tracing.Select("text.widestr")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.text.widestr": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	null := flag.Bool("null", false, "append a terminating zero code unit")
	strict := flag.Bool("strict", false, "validate continuation bytes")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)            // will set the correct level later
	pterm.Info.Println("Welcome to the wide-string CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("wide > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{repl: repl, null: *null}
	if *strict {
		intp.mode = utf8scan.Strict
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D or :quit") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	mode utf8scan.Mode
	null bool
}

func (intp *Intp) String() string {
	if intp == nil {
		return "()"
	}
	return fmt.Sprintf("( mode=%s null=%v )", intp.mode, intp.null)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		err, quit := intp.execute(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Commands start with a colon. Every other input line is text to encode.
var commandFn = map[string]func(*Intp, string) (error, bool){
	":quit":    quitOp,
	":help":    helpOp,
	":null":    nullOp,
	":plain":   plainOp,
	":strict":  strictOp,
	":lenient": lenientOp,
}

func (intp *Intp) execute(line string) (err error, stop bool) {
	cmd, arg, isCmd := parseCommand(line)
	if !isCmd {
		intp.encode(line)
		return nil, false
	}
	tracer().Debugf("cmd = %s, arg = %q", cmd, arg)
	f, ok := commandFn[cmd]
	if !ok {
		return fmt.Errorf("unknown command %s, try :help", cmd), false
	}
	return f(intp, arg)
}

// parseCommand splits a command line like ":help modes" into command and argument.
// A line starting with "::" is text starting with a colon.
func parseCommand(line string) (cmd string, arg string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, ":") || strings.HasPrefix(trimmed, "::") {
		return "", "", false
	}
	cmd, arg, _ = strings.Cut(trimmed, " ")
	return strings.ToLower(cmd), strings.TrimSpace(arg), true
}

// textOf returns the text to encode for an input line.
func textOf(line string) string {
	if strings.HasPrefix(strings.TrimSpace(line), "::") {
		return strings.TrimPrefix(strings.TrimSpace(line), ":")
	}
	return line
}

func quitOp(intp *Intp, arg string) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

func nullOp(intp *Intp, arg string) (error, bool) {
	intp.null = true
	return nil, false
}

func plainOp(intp *Intp, arg string) (error, bool) {
	intp.null = false
	return nil, false
}

func strictOp(intp *Intp, arg string) (error, bool) {
	intp.mode = utf8scan.Strict
	return nil, false
}

func lenientOp(intp *Intp, arg string) (error, bool) {
	intp.mode = utf8scan.Lenient
	return nil, false
}

// --- Encoding ---------------------------------------------------------

func (intp *Intp) encode(line string) {
	text := textOf(line)
	var units wide.Units
	if intp.null {
		units = wide.EncodeNullString(text, optionsFor(intp.mode)...)
	} else {
		units = wide.EncodeString(text, optionsFor(intp.mode)...)
	}
	pterm.DefaultTable.WithHasHeader().WithData(scalarTable(text, intp.mode)).Render()
	pterm.Printf("%d bytes -> %d code units\n", len(text), len(units))
	pterm.Println(units.Hex())
}
