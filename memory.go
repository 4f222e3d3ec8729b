package calc

import "math/big"

// Memory is a memory register holding a single value. The zero value holds 0.
type Memory struct {
	v big.Float
}

// Clear resets the register to 0.
func (m *Memory) Clear() {
	m.v.SetInt64(0)
}

// Recall returns a copy of the register's value.
func (m *Memory) Recall() *big.Float {
	return new(big.Float).Copy(&m.v)
}

// Add adds x to the register.
func (m *Memory) Add(x *big.Float) {
	m.v.Add(&m.v, x)
}

// Subtract subtracts x from the register.
func (m *Memory) Subtract(x *big.Float) {
	m.v.Sub(&m.v, x)
}
