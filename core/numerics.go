// SPDX-License-Identifier: MIT
package core

import "math"

// Eps is the absolute tolerance of every cost comparison in the module.
const Eps = 1e-9

// IsEQ reports a == b within Eps.
func IsEQ(a, b float64) bool { return math.Abs(a-b) <= Eps }

// IsLT reports a < b by more than Eps.
func IsLT(a, b float64) bool { return a-b < -Eps }

// IsLE reports a <= b within Eps.
func IsLE(a, b float64) bool { return a-b <= Eps }

// IsGT reports a > b by more than Eps.
func IsGT(a, b float64) bool { return a-b > Eps }

// IsGE reports a >= b within Eps.
func IsGE(a, b float64) bool { return a-b >= -Eps }

// IsZero reports |a| <= Eps.
func IsZero(a float64) bool { return math.Abs(a) <= Eps }

// Flip returns the opposite arc of the same edge.
func Flip(e int) int { return e ^ 1 }
