package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/SteveFortune/ocmock/encoding"
	"github.com/SteveFortune/ocmock/invocation"
)

func main() {
	var (
		encStr      = flag.String("enc", "", "Type encoding to classify")
		sigStr      = flag.String("sig", "", "Comma-separated slot encodings to describe")
		compatStr   = flag.String("compat", "", "Pair of encodings to compare (a,b)")
		valueStr    = flag.String("value", "", "Trial value to coerce into -enc (int, float, bool or obj:<name>)")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		invocation.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *encStr == "" && *sigStr == "" && *compatStr == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -enc <encoding> [-value v]")
		fmt.Fprintln(os.Stderr, "       inspect -sig <enc,enc,...>")
		fmt.Fprintln(os.Stderr, "       inspect -compat <enc,enc>")
		fmt.Fprintln(os.Stderr, "       inspect -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*encStr, *sigStr, *compatStr, *valueStr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(encStr, sigStr, compatStr, valueStr string) error {
	if compatStr != "" {
		parts := strings.SplitN(compatStr, ",", 2)
		if len(parts) != 2 {
			return fmt.Errorf("-compat wants two encodings separated by a comma")
		}
		a := encoding.Encoding(strings.TrimSpace(parts[0]))
		b := encoding.Encoding(strings.TrimSpace(parts[1]))
		fmt.Printf("%q <-> %q: compatible=%v\n", a, b, encoding.Compatible(a, b))
		return nil
	}

	if sigStr != "" {
		return describeSignature(sigStr)
	}

	enc := encoding.Encoding(encStr)
	printClassification(enc)

	if valueStr != "" {
		return trialCoercion(enc, valueStr)
	}
	return nil
}

func printClassification(enc encoding.Encoding) {
	cat := enc.Category()
	fmt.Printf("Encoding: %q\n", enc)
	fmt.Printf("Category: %s\n", cat)
	if info, err := enc.Layout(); err == nil {
		fmt.Printf("Layout:   size=%d align=%d\n", info.Size, info.Align)
	} else {
		fmt.Printf("Layout:   %v\n", err)
	}

	probe := &probeTarget{sig: invocation.Signature{enc}}
	frame, err := invocation.NewMarshaler(nil).Build(probe)
	switch {
	case err != nil:
		fmt.Printf("Default:  %v\n", err)
	case frame.IsObject(0):
		fmt.Printf("Default:  nil object\n")
	default:
		fmt.Printf("Default:  bytes % X\n", frame.Bytes(0))
	}
}

func describeSignature(sigStr string) error {
	var sig invocation.Signature
	for _, part := range strings.Split(sigStr, ",") {
		sig = append(sig, encoding.Encoding(strings.TrimSpace(part)))
	}

	fmt.Printf("Signature: %d slot(s)\n", len(sig))
	var total uintptr
	for i, enc := range sig {
		info, err := enc.Layout()
		if err != nil {
			fmt.Printf("  [%d] %q  %s  (%v)\n", i, enc, enc.Category(), err)
			continue
		}
		total = encoding.AlignTo(total, info.Align) + info.Size
		fmt.Printf("  [%d] %q  %s  size=%d align=%d\n", i, enc, enc.Category(), info.Size, info.Align)
	}
	fmt.Printf("Packed frame size: %d byte(s)\n", total)
	return nil
}

// trialCoercion builds a one-slot frame from the parsed value and reports
// the resulting payload or the coercion failure.
func trialCoercion(enc encoding.Encoding, valueStr string) error {
	arg, err := parseArgument(valueStr)
	if err != nil {
		return err
	}

	probe := &probeTarget{sig: invocation.Signature{enc}}
	frame, err := invocation.NewMarshaler(arg).Build(probe)
	if err != nil {
		fmt.Printf("Coercion: %v\n", err)
		return nil
	}

	if frame.IsObject(0) {
		ref, _ := frame.Object(0)
		fmt.Printf("Coercion: object slot -> %v\n", ref)
		return nil
	}
	fmt.Printf("Coercion: bytes % X\n", frame.Bytes(0))
	return nil
}

// probeTarget exposes a fixed signature and performs no work when invoked.
type probeTarget struct {
	sig invocation.Signature
}

func (p *probeTarget) Signature() invocation.Signature {
	return p.sig
}

func (p *probeTarget) Invoke(ctx context.Context, frame *invocation.Frame) error {
	return nil
}
