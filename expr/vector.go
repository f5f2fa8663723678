package expr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrShape reports a matrix whose dimensions cannot represent a 3-vector.
var ErrShape = errors.New("expr: shape mismatch")

// ============================================================
// Vector — ordered triple of scalar expressions over (u, v)
// ============================================================

// Vector is a parametric 3-vector: x(u,v), y(u,v), z(u,v).
// Values are immutable once constructed; all methods return new vectors.
type Vector struct {
	X, Y, Z Expr
}

func NewVector(x, y, z Expr) Vector {
	return Vector{X: x.Simplify(), Y: y.Simplify(), Z: z.Simplify()}
}

// Cross returns the 3D cross product a × b.
func (a Vector) Cross(b Vector) Vector {
	return Vector{
		X: AddOf(MulOf(a.Y, b.Z), MulOf(N(-1), a.Z, b.Y)),
		Y: AddOf(MulOf(a.Z, b.X), MulOf(N(-1), a.X, b.Z)),
		Z: AddOf(MulOf(a.X, b.Y), MulOf(N(-1), a.Y, b.X)),
	}
}

// Dot returns the scalar product a · b.
func (a Vector) Dot(b Vector) Expr {
	return AddOf(MulOf(a.X, b.X), MulOf(a.Y, b.Y), MulOf(a.Z, b.Z))
}

// Neg returns -a.
func (a Vector) Neg() Vector {
	return Vector{
		X: MulOf(N(-1), a.X),
		Y: MulOf(N(-1), a.Y),
		Z: MulOf(N(-1), a.Z),
	}
}

// Scale multiplies every component by the scalar expression s.
func (a Vector) Scale(s Expr) Vector {
	return Vector{X: MulOf(s, a.X), Y: MulOf(s, a.Y), Z: MulOf(s, a.Z)}
}

// NormSquared returns a · a.
func (a Vector) NormSquared() Expr { return a.Dot(a) }

// Unit divides the vector by the symbolic square root of its own dot
// product. The quotient is left as a product with a -1/2 power so that
// numeric compilation handles it directly.
func (a Vector) Unit() Vector {
	return a.Scale(PowOf(a.NormSquared(), F(-1, 2)))
}

// Diff differentiates component-wise.
func (a Vector) Diff(varName string) Vector {
	return Vector{
		X: Diff(a.X, varName),
		Y: Diff(a.Y, varName),
		Z: Diff(a.Z, varName),
	}
}

// Sub substitutes component-wise.
func (a Vector) Sub(varName string, value Expr) Vector {
	return Vector{
		X: Sub(a.X, varName, value),
		Y: Sub(a.Y, varName, value),
		Z: Sub(a.Z, varName, value),
	}
}

// DeepSimplify simplifies component-wise to a fixpoint.
func (a Vector) DeepSimplify() Vector {
	return Vector{X: DeepSimplify(a.X), Y: DeepSimplify(a.Y), Z: DeepSimplify(a.Z)}
}

// FreeSymbols returns the union of the components' free variables.
func (a Vector) FreeSymbols() map[string]struct{} {
	out := map[string]struct{}{}
	collectSymbols(a.X, out)
	collectSymbols(a.Y, out)
	collectSymbols(a.Z, out)
	return out
}

func (a Vector) Equal(b Vector) bool {
	return a.X.Equal(b.X) && a.Y.Equal(b.Y) && a.Z.Equal(b.Z)
}

func (a Vector) String() string {
	return "(" + a.X.String() + ", " + a.Y.String() + ", " + a.Z.String() + ")"
}

func (a Vector) LaTeX() string {
	return "\\begin{pmatrix}" + a.X.LaTeX() + " \\\\ " + a.Y.LaTeX() + " \\\\ " + a.Z.LaTeX() + "\\end{pmatrix}"
}

// Matrix returns the column-matrix representation of the vector.
func (a Vector) Matrix() *Matrix {
	return MatrixFromSlice(3, 1, []Expr{a.X, a.Y, a.Z})
}

// ============================================================
// Matrix — symbolic matrix, interchange form for Vector
// ============================================================

type Matrix struct {
	rows, cols int
	data       [][]Expr
}

func NewMatrix(rows, cols int) *Matrix {
	data := make([][]Expr, rows)
	for i := range data {
		data[i] = make([]Expr, cols)
		for j := range data[i] {
			data[i][j] = N(0)
		}
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

func MatrixFromSlice(rows, cols int, entries []Expr) *Matrix {
	if len(entries) != rows*cols {
		panic(fmt.Sprintf("expr: MatrixFromSlice needs %d entries, got %d", rows*cols, len(entries)))
	}
	m := NewMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.data[i][j] = entries[i*cols+j]
		}
	}
	return m
}

// Column builds the 3×1 column form of a parametric vector.
func Column(x, y, z Expr) *Matrix {
	return MatrixFromSlice(3, 1, []Expr{x, y, z})
}

func (m *Matrix) checkBounds(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("expr: matrix index out of range [%d,%d] for %dx%d", row, col, m.rows, m.cols))
	}
}

func (m *Matrix) Get(row, col int) Expr {
	m.checkBounds(row, col)
	return m.data[row][col]
}
func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

func (m *Matrix) Transpose() *Matrix {
	result := NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			result.data[j][i] = m.data[i][j]
		}
	}
	return result
}

func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i][j].String())
		}
		sb.WriteString("]")
	}
	sb.WriteString("]")
	return sb.String()
}

func (m *Matrix) LaTeX() string {
	var sb strings.Builder
	sb.WriteString("\\begin{pmatrix}")
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString(" \\\\ ")
		}
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(" & ")
			}
			sb.WriteString(m.data[i][j].LaTeX())
		}
	}
	sb.WriteString("\\end{pmatrix}")
	return sb.String()
}

// VectorFromMatrix accepts the 3×1 column form (or its 1×3 transpose) and
// returns the equivalent Vector.
func VectorFromMatrix(m *Matrix) (Vector, error) {
	if m.rows == 1 && m.cols == 3 {
		m = m.Transpose()
	}
	if m.rows == 3 && m.cols == 1 {
		return NewVector(m.data[0][0], m.data[1][0], m.data[2][0]), nil
	}
	return Vector{}, fmt.Errorf("%w: want 3x1 column, got %dx%d", ErrShape, m.rows, m.cols)
}
