package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/matheusoreis/jaslet"
	"github.com/matheusoreis/jaslet/internal/config"
)

// statementComplete checks if we have a terminating ';' outside single quotes.
func statementComplete(buf string) bool {
	inQuote := false
	escaped := false

	for _, r := range buf {
		if escaped {
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		if r == '\'' {
			inQuote = !inQuote
			continue
		}
		if r == ';' && !inQuote {
			return true
		}
	}
	return false
}

func isMetaCommand(line string) bool {
	line = strings.TrimSpace(line)
	return strings.HasPrefix(line, "\\") ||
		line == "quit" || line == "exit"
}

// isQuery decides whether a statement goes down the row-returning path.
func isQuery(stmt string) bool {
	head := strings.ToUpper(strings.TrimSpace(stmt))
	for _, kw := range []string{"SELECT", "WITH", "PRAGMA", "EXPLAIN", "VALUES"} {
		if strings.HasPrefix(head, kw) {
			return true
		}
	}
	return false
}

func runStatement(db *jaslet.Client, stmt string) (*jaslet.Result, error) {
	if isQuery(stmt) {
		return db.Query(stmt).Result()
	}
	return db.Exec(stmt).Result()
}

func printResult(res *jaslet.Result) {
	if len(res.Columns) == 0 {
		// DDL/DML
		fmt.Printf("OK (%d affected)\n", res.AffectedRows)
		return
	}

	cols := res.Columns

	// 1) compute widths
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = len(c)
	}
	cells := make([][]string, len(res.Rows))
	for ri, row := range res.Rows {
		out := make([]string, len(cols))
		for i, c := range cols {
			v, _ := row.Get(c)
			out[i] = v.String()
			if len(out[i]) > widths[i] {
				widths[i] = len(out[i])
			}
		}
		cells[ri] = out
	}

	printRow := func(values []string) {
		for i := range cols {
			if i > 0 {
				fmt.Print(" | ")
			}
			fmt.Print(padRight(values[i], widths[i]))
		}
		fmt.Println()
	}

	// 2) header
	printRow(cols)

	// 3) separator ----+----
	for i := range cols {
		if i > 0 {
			fmt.Print("-+-")
		}
		fmt.Print(strings.Repeat("-", widths[i]))
	}
	fmt.Println()

	// 4) rows
	for _, out := range cells {
		printRow(out)
	}

	fmt.Printf("(%d rows)\n", res.RowCount())
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

// oneLine collapses a possibly multiline statement into a single
// whitespace-normalized line for the history file.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// printHistory shows the tail of the readline history file.
func printHistory(path string, last int) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("history read failed", "path", path, "err", err)
		}
		return
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if last > 0 && len(lines) > last {
		lines = lines[len(lines)-last:]
	}
	for i, line := range lines {
		fmt.Printf("%5d  %s\n", i+1, line)
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".jaslet_history"
	}
	return filepath.Join(home, ".jaslet_history")
}

func main() {
	var (
		dbPath     = flag.String("db", "", "database file path")
		cfgPath    = flag.String("config", "", "yaml config file path")
		prompt     = flag.String("prompt", "jaslet> ", "shell prompt")
		histPath   = flag.String("history", defaultHistoryPath(), "history file path")
		histMax    = flag.Int("history-max", 2000, "max history lines loaded into memory")
		oneShotSQL = flag.String("c", "", "execute one SQL and exit (must end with ';')")
	)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	// Config provides defaults; explicitly set flags win.
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["db"] && cfg.Database.Path != "" {
			*dbPath = cfg.Database.Path
		}
		if !set["prompt"] && cfg.Shell.Prompt != "" {
			*prompt = cfg.Shell.Prompt
		}
		if !set["history"] && cfg.Shell.HistoryPath != "" {
			*histPath = cfg.Shell.HistoryPath
		}
		if !set["history-max"] && cfg.Shell.HistoryMax > 0 {
			*histMax = cfg.Shell.HistoryMax
		}
	}

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: jaslet-shell -db <file> [-config <file>] [-c <sql;>]")
		os.Exit(1)
	}

	db, err := jaslet.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	// one-shot mode
	if strings.TrimSpace(*oneShotSQL) != "" {
		res, err := runStatement(db, *oneShotSQL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		printResult(res)
		return
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          *prompt,
		HistoryFile:     *histPath,
		HistoryLimit:    *histMax,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = rl.Close() }()

	var buf strings.Builder

	fmt.Printf("connected to %s\n", *dbPath)
	fmt.Println("type \\help for help")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			// Ctrl+C clears current buffer
			if buf.Len() > 0 {
				buf.Reset()
				rl.SetPrompt(*prompt)
				continue
			}
			fmt.Println("^C")
			continue
		}
		if err != nil {
			// EOF
			fmt.Println()
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// meta commands
		if isMetaCommand(line) {
			switch line {
			case "\\q", "quit", "exit":
				return
			case "\\help":
				fmt.Println(`meta commands:
  \q | quit | exit       quit
  \history               print history
  \help                  show help

sql:
  end statement with ';'
  multiline is supported (shell will wait until ';')`)
			case "\\history":
				printHistory(*histPath, 50)
			default:
				fmt.Printf("unknown command: %s\n", line)
			}
			continue
		}

		// accumulate sql
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(line)

		if !statementComplete(buf.String()) {
			rl.SetPrompt("...> ")
			continue
		}

		stmt := strings.TrimSpace(buf.String())
		buf.Reset()
		rl.SetPrompt(*prompt)

		// persist history by executed statement, one line each
		_ = rl.SaveHistory(oneLine(stmt))

		res, err := runStatement(db, stmt)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		printResult(res)
	}
}
