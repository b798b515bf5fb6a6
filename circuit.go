package main

import (
	"github.com/consensys/gnark/frontend"
)

// CircleCircuit proves knowledge of a point (x, y) on a circle of public
// radius r, i.e. x^2 + y^2 == r^2 over the scalar field.
type CircleCircuit struct {
	// Private inputs (witness)
	X frontend.Variable
	Y frontend.Variable

	// Public input: the radius
	R frontend.Variable `gnark:",public"`
}

// Define declares the circuit constraints.
//
// R1CS only admits constraints of the form (linear) * (linear) = (linear),
// so the relation is flattened one square per auxiliary wire:
//
//	x * x = x_square
//	y * y = y_square
//	r * r = r_square
//	(x_square + y_square) * 1 = r_square
//
// Allocation order matters: parameter generation is positionally sensitive,
// so the wires are laid out exactly as above, with r the sole instance input.
func (circuit *CircleCircuit) Define(api frontend.API) error {
	xSquare := api.Mul(circuit.X, circuit.X)
	ySquare := api.Mul(circuit.Y, circuit.Y)
	rSquare := api.Mul(circuit.R, circuit.R)

	// Linearize the sum against the reserved one-constant.
	api.AssertIsEqual(api.Add(xSquare, ySquare), rSquare)

	return nil
}
