package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	accel "github.com/vybium/vybium-zkvm-accel/pkg/vybium-zkvm-accel"
)

// Run using
//  go run ./cmd/vybium-accel-tool <command> <flags>

var (
	inputFlag = cli.StringFlag{
		Name:  "input",
		Usage: "JSON array of field words; read from stdin when empty",
		Value: "",
	}
	casesFlag = cli.IntFlag{
		Name:  "cases",
		Usage: "number of random parity cases to run on top of the fixed corpus",
		Value: 256,
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed for the random parity corpus",
		Value: 1,
	}
	iterationsFlag = cli.IntFlag{
		Name:  "iterations",
		Usage: "iterations per benchmarked operation",
		Value: 10000,
	}
)

func main() {
	app := &cli.App{
		Name:  "vybium-accel-tool",
		Usage: "tip5 acceleration kernel toolbox",
		Commands: []*cli.Command{
			{
				Name:   "permute",
				Usage:  "apply the 16-word permutation to a JSON word array",
				Flags:  []cli.Flag{&inputFlag},
				Action: runPermute,
			},
			{
				Name:   "hash10",
				Usage:  "hash a 10-word JSON array into a 5-word digest",
				Flags:  []cli.Flag{&inputFlag},
				Action: runHash10,
			},
			{
				Name:   "parity",
				Usage:  "check the accelerated kernel against the reference kernel",
				Flags:  []cli.Flag{&casesFlag, &seedFlag},
				Action: runParity,
			},
			{
				Name:   "bench",
				Usage:  "time both kernels on permute and hash-10",
				Flags:  []cli.Flag{&iterationsFlag},
				Action: runBench,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// readWords parses the word array from --input or stdin.
func readWords(ctx *cli.Context, count int) ([]uint64, error) {
	raw := []byte(ctx.String(inputFlag.Name))
	if len(raw) == 0 {
		var err error
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	}
	var words []uint64
	if err := json.Unmarshal(raw, &words); err != nil {
		return nil, fmt.Errorf("parsing word array: %w", err)
	}
	if len(words) != count {
		return nil, fmt.Errorf("got %d words, want %d", len(words), count)
	}
	return words, nil
}

func writeWords(words []uint64) error {
	out, err := json.Marshal(words)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runPermute(ctx *cli.Context) error {
	words, err := readWords(ctx, accel.StateSize)
	if err != nil {
		return err
	}
	var state accel.State
	copy(state[:], words)
	if err := accel.Permute(&state); err != nil {
		return err
	}
	return writeWords(state[:])
}

func runHash10(ctx *cli.Context) error {
	words, err := readWords(ctx, accel.Rate)
	if err != nil {
		return err
	}
	var input [accel.Rate]uint64
	copy(input[:], words)
	digest, err := accel.Hash10(input)
	if err != nil {
		return err
	}
	return writeWords(digest[:])
}

func runParity(ctx *cli.Context) error {
	cases := ctx.Int(casesFlag.Name)
	rng := rand.New(rand.NewSource(ctx.Int64(seedFlag.Name)))

	var maxState accel.State
	for i := range maxState {
		maxState[i] = accel.FieldModulus - 1
	}
	var ascending accel.State
	for i := range ascending {
		ascending[i] = uint64(i + 1)
	}
	states := []accel.State{{}, ascending, maxState}
	for i := 0; i < cases; i++ {
		var s accel.State
		for j := range s {
			s[j] = rng.Uint64() % accel.FieldModulus
		}
		states = append(states, s)
	}

	var maxInput [accel.Rate]uint64
	for i := range maxInput {
		maxInput[i] = accel.FieldModulus - 1
	}
	inputs := [][accel.Rate]uint64{{}, maxInput}
	for i := 0; i < cases; i++ {
		var in [accel.Rate]uint64
		for j := range in {
			in[j] = rng.Uint64() % accel.FieldModulus
		}
		inputs = append(inputs, in)
	}

	if err := accel.VerifyPermuteParity(states); err != nil {
		return fmt.Errorf("permutation parity failed: %w", err)
	}
	if err := accel.VerifyHash10Parity(inputs); err != nil {
		return fmt.Errorf("hash-10 parity failed: %w", err)
	}
	fmt.Printf("parity ok: %d permutation cases, %d hash-10 cases\n", len(states), len(inputs))
	return nil
}

func runBench(ctx *cli.Context) error {
	iterations := ctx.Int(iterationsFlag.Name)
	kernels := []accel.Kernel{accel.Accelerated(), accel.Reference()}

	var ascending accel.State
	for i := range ascending {
		ascending[i] = uint64(i + 1)
	}
	input := [accel.Rate]uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	for _, k := range kernels {
		state := ascending
		start := time.Now()
		for i := 0; i < iterations; i++ {
			if err := k.Permute(&state); err != nil {
				return err
			}
		}
		permuteNs := time.Since(start).Nanoseconds() / int64(iterations)

		start = time.Now()
		for i := 0; i < iterations; i++ {
			if _, err := k.Hash10(input); err != nil {
				return err
			}
		}
		hashNs := time.Since(start).Nanoseconds() / int64(iterations)

		fmt.Printf("%-12s permute %8d ns/op    hash10 %8d ns/op\n", k.Name(), permuteNs, hashNs)
	}
	return nil
}
