package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"padbreak/analysis"
	"padbreak/config"
	"padbreak/editor"
	"padbreak/export"
	"padbreak/importer"
	"padbreak/script"
	"padbreak/terminal"

	"github.com/sirupsen/logrus"
)

// options holds the parsed command line.
type options struct {
	file       string
	output     string
	format     string
	configFile string
	logFile    string
	scriptFile string
	batch      bool
	width      int
	height     int
}

func main() {
	var opts options

	flag.StringVar(&opts.file, "f", "", "File with one hex-encoded ciphertext per line")
	flag.StringVar(&opts.output, "o", "", "Output file for the key and plaintexts (default: "+export.DefaultBaseName+" with the format's extension)")
	flag.StringVar(&opts.format, "format", "", fmt.Sprintf("Output format: %v (default from config)", export.GetAvailableFormats()))
	flag.StringVar(&opts.configFile, "config", "", "YAML config file (default: "+config.DefaultFile+" if present)")
	flag.StringVar(&opts.logFile, "log", "", "Write logs to this file")
	flag.StringVar(&opts.scriptFile, "script", "", "Replay edits from a JSON script before starting")
	flag.BoolVar(&opts.batch, "batch", false, "Do not start the terminal UI, print the decryption and export")
	flag.IntVar(&opts.width, "width", 80, "Virtual screen width in batch mode")
	flag.IntVar(&opts.height, "height", 24, "Virtual screen height in batch mode")
	scriptExample := flag.Bool("script-example", false, "Print an example edit script and exit")
	help := flag.Bool("help", false, "Show help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -f ciphertexts.txt [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Recovers a key reused across several XOR ciphertexts and lets you refine it.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -f cts.txt                        # Recover and edit interactively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f cts.txt -batch                 # Print the automatic decryption\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f cts.txt -batch -script e.json  # Apply recorded guesses\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f cts.txt -format text -o out.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nInteractive Mode Commands:\n")
		fmt.Fprint(os.Stderr, editor.GetHelpText())
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	if *scriptExample {
		fmt.Println(script.Example())
		os.Exit(0)
	}

	// Allow the ciphertext file as a positional argument too
	if opts.file == "" && flag.NArg() > 0 {
		opts.file = flag.Arg(0)
	}
	if opts.file == "" {
		fmt.Fprintf(os.Stderr, "Error: Please provide a ciphertext file with -f\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run loads everything, recovers the key and hands the editor to the
// terminal UI or, in batch mode, prints the decryption to stdout.
func run(opts options, stdout io.Writer) error {
	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(cfg.Format)
	if opts.format != "" {
		format, err = export.ParseFormat(opts.format)
	}
	if err != nil {
		return err
	}
	if opts.output == "" {
		if opts.output, err = export.DefaultOutput(format); err != nil {
			return err
		}
	}

	logger, closer, err := config.NewLogger(cfg.LogLevel, opts.logFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	ciphertexts, err := importer.LoadFile(opts.file)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"file":        opts.file,
		"ciphertexts": len(ciphertexts),
	}).Info("ciphertexts loaded")

	key := analysis.NewRecoverer(logger).Recover(ciphertexts)

	ed := editor.NewKeyEditor(ciphertexts, key)
	ed.SetPlaceholder(cfg.PlaceholderRune())
	ed.SetHistoryLimit(cfg.HistorySize)

	if !opts.batch {
		if opts.scriptFile != "" {
			// Scripts run before the UI knows its size, use the batch geometry
			ed.SetViewport(batchViewport(cfg, opts))
			quit, err := playScript(opts.scriptFile, ed, logger)
			if err != nil {
				return err
			}
			if quit {
				return saveResult(ed, opts.output, format, logger)
			}
		}
		return terminal.RunTUILoop(ed, terminal.Options{
			Config: cfg,
			Output: opts.output,
			Format: format,
			Logger: logger,
		})
	}

	ed.SetViewport(batchViewport(cfg, opts))
	if opts.scriptFile != "" {
		if _, err := playScript(opts.scriptFile, ed, logger); err != nil {
			return err
		}
	}

	for _, line := range ed.Plaintexts() {
		fmt.Fprintln(stdout, line)
	}
	return saveResult(ed, opts.output, format, logger)
}

// saveResult exports the editor state to output.
func saveResult(ed *editor.KeyEditor, output string, format export.Format, logger *logrus.Logger) error {
	exporter, err := export.NewExporter(format)
	if err != nil {
		return err
	}

	result := export.NewResult(ed.Key(), ed.Plaintexts(), string(ed.Placeholder()))
	if err := export.Write(output, exporter, result); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"output": output,
		"format": exporter.GetFormatName(),
		"known":  result.Known,
		"length": result.Length,
	}).Info("result saved")
	return nil
}

// loadConfig reads the given file, or the default file when it exists.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.LoadOptional(config.DefaultFile)
	}
	return config.Load(path)
}

// batchViewport is the viewport the terminal UI would use on a screen of
// the requested size.
func batchViewport(cfg config.Config, opts options) editor.Viewport {
	return terminal.ComputeLayout(opts.width, opts.height, cfg.Margin, cfg.KeyPanelPercent).Viewport()
}

func playScript(path string, ed *editor.KeyEditor, logger *logrus.Logger) (bool, error) {
	s, err := script.Load(path)
	if err != nil {
		return false, err
	}
	return script.NewPlayer(logger).Play(s, ed), nil
}
