package main

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"
)

func TestCircleCircuit(t *testing.T) {
	assert := test.NewAssert(t)

	// 4^2 + 3^2 == 5^2
	assert.ProverSucceeded(&CircleCircuit{}, &CircleCircuit{X: 4, Y: 3, R: 5},
		test.WithCurves(ecc.BN254), test.WithBackends(backend.GROTH16))
}

func TestCircleCircuitUnsatisfied(t *testing.T) {
	assert := test.NewAssert(t)

	// 2^2 + 3^2 != 5^2
	assert.ProverFailed(&CircleCircuit{}, &CircleCircuit{X: 2, Y: 3, R: 5},
		test.WithCurves(ecc.BN254), test.WithBackends(backend.GROTH16))
}

// TestCircleCircuitFieldTriple checks the relation on a triple that only
// exists in the field: pick x, y and take r as a field square root of
// x^2 + y^2, so the relation holds mod p but not over the integers.
func TestCircleCircuitFieldTriple(t *testing.T) {
	req := require.New(t)

	var x, y, xSquare, ySquare, sum, r fr.Element
	x.SetUint64(7919)

	// roughly half of all field elements are squares, so a small scan of y
	// values is guaranteed to hit one in practice
	found := false
	for i := uint64(1); i < 64; i++ {
		y.SetUint64(i)
		xSquare.Square(&x)
		ySquare.Square(&y)
		sum.Add(&xSquare, &ySquare)
		if r.Sqrt(&sum) != nil {
			found = true
			break
		}
	}
	req.True(found, "no quadratic residue found in scan")

	assignment := &CircleCircuit{
		X: x.BigInt(new(big.Int)),
		Y: y.BigInt(new(big.Int)),
		R: r.BigInt(new(big.Int)),
	}
	req.NoError(test.IsSolved(&CircleCircuit{}, assignment, ecc.BN254.ScalarField()))
}

// TestCircuitStructure pins the circuit topology: the proving key derived at
// setup is only valid if the constraint layout never depends on assignments.
func TestCircuitStructure(t *testing.T) {
	req := require.New(t)
	field := ecc.BN254.ScalarField()

	cs, err := frontend.Compile(field, r1cs.NewBuilder, &CircleCircuit{})
	req.NoError(err)

	// one multiplicative constraint per square, plus the closing sum
	req.Equal(4, cs.GetNbConstraints())
	req.Equal(2, cs.GetNbSecretVariables())
	req.Equal(2, cs.GetNbPublicVariables()) // reserved one-constant + r
	req.Equal(3, cs.GetNbInternalVariables())

	// a fresh instance compiles to the same topology
	cs2, err := frontend.Compile(field, r1cs.NewBuilder, &CircleCircuit{})
	req.NoError(err)
	req.Equal(cs.GetNbConstraints(), cs2.GetNbConstraints())
	req.Equal(cs.GetNbPublicVariables(), cs2.GetNbPublicVariables())
	req.Equal(cs.GetNbSecretVariables(), cs2.GetNbSecretVariables())
	req.Equal(cs.GetNbInternalVariables(), cs2.GetNbInternalVariables())
}
