package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	mysha "github.com/LucasMABF/MySha"
)

var (
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	digestStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	currentStyle = lipgloss.NewStyle().Reverse(true)
)

// animator renders the stages of a hash computation on the terminal
// alt-screen. It implements mysha.Tracer; the engine pushes every
// intermediate value through it while computing the real digest.
type animator struct {
	out          *termenv.Output
	stdin        *bufio.Reader
	enter        bool
	faster       bool
	littleEndian bool
	stopped      bool

	bitLen int // message bits before padding, for styling the pad
	sigch  chan os.Signal
}

func newAnimator(enter, faster, littleEndian bool) *animator {
	return &animator{
		out:          termenv.NewOutput(os.Stdout),
		stdin:        bufio.NewReader(os.Stdin),
		enter:        enter,
		faster:       faster,
		littleEndian: littleEndian,
	}
}

func (a *animator) start() {
	a.out.AltScreen()
	a.out.HideCursor()
	// Restore the terminal on Ctrl-C; the alt-screen would otherwise
	// swallow the shell.
	a.sigch = make(chan os.Signal, 1)
	signal.Notify(a.sigch, os.Interrupt)
	go func() {
		if _, ok := <-a.sigch; ok {
			a.out.ExitAltScreen()
			a.out.ShowCursor()
			os.Exit(0)
		}
	}()
}

func (a *animator) stop() {
	if a.stopped {
		return
	}
	a.stopped = true
	signal.Stop(a.sigch)
	close(a.sigch)
	a.out.ExitAltScreen()
	a.out.ShowCursor()
}

// sum hashes one message while animating every pipeline stage, then
// holds the final digest on screen.
func (a *animator) sum(message string, kind mysha.InputKind, index, total int) (mysha.Digest, error) {
	a.clear()
	if total > 1 {
		fmt.Printf("%s %d/%d\n", labelStyle.Render("message"), index+1, total)
	}
	fmt.Printf("%s (%s): %s\n", labelStyle.Render("input"), kind, message)
	a.pause(time.Second)

	digest, err := mysha.SumTraced(message, kind, a)
	if err != nil {
		return mysha.Digest{}, err
	}

	out := digest.Hex()
	if a.littleEndian {
		out = digest.HexLE()
	}
	fmt.Printf("\n%s %s\n", labelStyle.Render("digest:"), digestStyle.Render(out))
	a.pause(3 * time.Second)
	return digest, nil
}

func (a *animator) NormalizedBits(bits string) {
	a.bitLen = len(bits)
	fmt.Printf("\n%s %s\n", labelStyle.Render("bits:"), wrapBits(bits))
	a.pause(time.Second)
}

func (a *animator) PaddedBits(bits string) {
	// The suffix beyond the original message is the padding: a '1',
	// the '0' fill, and the 64-bit length field.
	fmt.Printf("\n%s %s\n", labelStyle.Render("padded:"),
		wrapBits(bits[:a.bitLen])+addedStyle.Render(wrapBits(bits[a.bitLen:])))
	fmt.Println(dimStyle.Render(fmt.Sprintf("%d bits -> %d bits (%d block(s) of 512)",
		a.bitLen, len(bits), len(bits)/512)))
	a.pause(2 * time.Second)
}

func (a *animator) BlockStart(index, total int, words [16]uint32) {
	a.clear()
	fmt.Printf("%s %d/%d\n\n", labelStyle.Render("block"), index+1, total)
	fmt.Println(dimStyle.Render("initial message schedule (w0..w15):"))
	for i, w := range words {
		fmt.Printf("%08x ", w)
		if i%8 == 7 {
			fmt.Println()
		}
	}
	a.pause(time.Second)
}

func (a *animator) Schedule(index int, w [64]uint32) {
	fmt.Printf("\n%s\n", dimStyle.Render("expanded schedule (w16..w63 derived from earlier words):"))
	for i, word := range w {
		s := fmt.Sprintf("%08x", word)
		if i >= 16 {
			s = addedStyle.Render(s)
		}
		fmt.Printf("%s ", s)
		if i%8 == 7 {
			fmt.Println()
		}
	}
	a.pause(2 * time.Second)
	fmt.Printf("\n%s\n", dimStyle.Render("compressing, 64 rounds:"))
	// Reserve the region the round view redraws in place.
	fmt.Print(strings.Repeat("\n", 3))
}

func (a *animator) Round(i int, state [8]uint32) {
	a.out.CursorUp(3)
	fmt.Printf("%s\n", currentStyle.Render(fmt.Sprintf("round %2d", i)))
	fmt.Printf("a=%08x b=%08x c=%08x d=%08x\n", state[0], state[1], state[2], state[3])
	fmt.Printf("e=%08x f=%08x g=%08x h=%08x\n", state[4], state[5], state[6], state[7])
	if a.enter {
		a.pause(0)
	} else if !a.faster {
		time.Sleep(25 * time.Millisecond)
	}
}

func (a *animator) BlockEnd(index int, state [8]uint32) {
	fmt.Printf("\n%s ", labelStyle.Render("state:"))
	for _, w := range state {
		fmt.Printf("%08x ", w)
	}
	fmt.Println()
	a.pause(time.Second)
}

// pause waits for Enter in step mode, otherwise sleeps unless the
// faster flag disabled the explanatory delays.
func (a *animator) pause(d time.Duration) {
	if a.enter {
		_, _ = a.stdin.ReadString('\n')
		return
	}
	if !a.faster {
		time.Sleep(d)
	}
}

func (a *animator) clear() {
	a.out.ClearScreen()
	a.out.MoveCursor(1, 1)
}

// wrapBits breaks a long bit string into 64-bit lines so the alt-screen
// stays readable for multi-block messages.
func wrapBits(bits string) string {
	if len(bits) <= 64 {
		return bits
	}
	var b strings.Builder
	for i := 0; i < len(bits); i += 64 {
		end := i + 64
		if end > len(bits) {
			end = len(bits)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(bits[i:end])
	}
	return b.String()
}
