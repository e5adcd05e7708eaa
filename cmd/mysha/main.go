package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	mysha "github.com/LucasMABF/MySha"
)

var cli struct {
	Messages []string `arg:"" optional:"" help:"Messages to hash."`

	Type         string `short:"t" default:"text" enum:"text,binary,lebinary,file,hex,lehex,decimal" help:"Input type (${enum})."`
	LittleEndian bool   `short:"l" help:"Display digests in little-endian byte order."`
	Verbose      bool   `short:"v" help:"Prefix each digest with its index and input."`
	SeparateOff  bool   `short:"s" help:"Treat piped stdin as one message instead of one message per line."`
	Animate      bool   `short:"a" help:"Animate the hashing process."`
	Enter        bool   `short:"e" help:"Advance the animation with Enter instead of a timer."`
	Faster       bool   `short:"f" help:"Skip the explanatory pauses in the animation."`
}

func kindFromName(name string) mysha.InputKind {
	switch name {
	case "binary":
		return mysha.Binary
	case "lebinary":
		return mysha.LittleEndianBinary
	case "hex":
		return mysha.Hex
	case "lehex":
		return mysha.LittleEndianHex
	case "decimal":
		return mysha.Decimal
	case "file":
		return mysha.File
	default:
		return mysha.Text
	}
}

// readStdin collects piped input: one message per line, or the whole
// stream as a single message when separate-by-lines is turned off.
func readStdin(whole bool) ([]string, error) {
	if whole {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return []string{string(data)}, nil
	}
	var messages []string
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(nil, 16*1024*1024)
	for scanner.Scan() {
		messages = append(messages, scanner.Text())
	}
	return messages, scanner.Err()
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("mysha"),
		kong.Description("A from-scratch SHA-256 implementation with selectable input encodings."),
		kong.UsageOnError(),
	)

	kind := kindFromName(cli.Type)
	messages := cli.Messages

	stdinTTY := isatty.IsTerminal(os.Stdin.Fd())
	if !stdinTTY {
		piped, err := readStdin(cli.SeparateOff)
		kctx.FatalIfErrorf(err)
		messages = append(messages, piped...)
	}

	if len(messages) == 0 {
		fmt.Print("Message to hash: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			kctx.FatalIfErrorf(err)
		}
		messages = append(messages, strings.TrimRight(line, "\r\n"))
	}

	var anim *animator
	if cli.Animate && isatty.IsTerminal(os.Stdout.Fd()) {
		anim = newAnimator(cli.Enter && stdinTTY, cli.Faster, cli.LittleEndian)
		anim.start()
		defer anim.stop()
	}

	// One bad input must not abort the rest; report it and move on.
	failed := false
	for i, message := range messages {
		var digest mysha.Digest
		var err error
		if anim != nil {
			digest, err = anim.sum(message, kind, i, len(messages))
		} else {
			digest, err = mysha.Sum(message, kind)
		}
		if err != nil {
			if anim != nil {
				anim.stop()
				anim = nil
			}
			fmt.Fprintf(os.Stderr, "mysha: message %d (%s): %v\n", i, kind, err)
			failed = true
			continue
		}

		if anim != nil {
			continue // the animator already showed the digest
		}
		out := digest.Hex()
		if cli.LittleEndian {
			out = digest.HexLE()
		}
		if cli.Verbose {
			fmt.Printf("[%d](%s): %s\n", i, message, out)
		} else {
			fmt.Println(out)
		}
	}

	if anim != nil {
		anim.stop()
		anim = nil
	}
	if failed {
		kctx.Exit(1)
	}
}
