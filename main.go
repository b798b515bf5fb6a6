package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/rs/zerolog"
)

func main() {
	x := flag.Int64("x", 4, "private x coordinate")
	y := flag.Int64("y", 3, "private y coordinate")
	r := flag.Int64("r", 5, "public radius")
	outDir := flag.String("out", "output", "artifact directory, empty to skip export")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	if err := run(log, *x, *y, *r, *outDir); err != nil {
		log.Fatal().Err(err).Msg("proof lifecycle failed")
	}
}

// run drives the full Groth16 lifecycle for the circle circuit:
// compile, trusted setup, witness, prove, verify, export.
func run(log zerolog.Logger, x, y, r int64, outDir string) error {
	// Step 1: compile the circuit into an R1CS. Only the structure is needed
	// here; values come in with the witness below.
	var circuit CircleCircuit

	start := time.Now()
	cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &circuit)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}
	log.Info().
		Int("constraints", cs.GetNbConstraints()).
		Int("public", cs.GetNbPublicVariables()-1). // -1 for the constant 1
		Dur("took", time.Since(start)).
		Msg("circuit compiled")

	// Step 2: trusted setup from structure alone.
	start = time.Now()
	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	log.Info().Dur("took", time.Since(start)).Msg("trusted setup complete")

	// Step 3: bind the concrete values. An unset variable fails here rather
	// than defaulting to zero.
	assignment := CircleCircuit{X: x, Y: y, R: r}

	witness, err := frontend.NewWitness(&assignment, ecc.BN254.ScalarField())
	if err != nil {
		return fmt.Errorf("witness: %w", err)
	}
	publicWitness, err := witness.Public()
	if err != nil {
		return fmt.Errorf("public witness: %w", err)
	}
	log.Info().Int64("x", x).Int64("y", y).Int64("r", r).Msg("witness created")

	// Step 4: prove. The solver rejects witnesses that do not satisfy
	// x^2 + y^2 == r^2.
	start = time.Now()
	proof, err := groth16.Prove(cs, pk, witness)
	if err != nil {
		return fmt.Errorf("prove: %w", err)
	}
	log.Info().Dur("took", time.Since(start)).Msg("proof generated")

	// Step 5: verify against the public input only.
	start = time.Now()
	if err := groth16.Verify(proof, vk, publicWitness); err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	log.Info().Dur("took", time.Since(start)).Msg("proof verified")

	if outDir == "" {
		return nil
	}
	return exportArtifacts(log, outDir, proof, vk, publicWitness, r)
}
