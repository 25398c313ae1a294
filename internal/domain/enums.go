package domain

// Operator is one of the four binary arithmetic operators.
type Operator byte

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
)

// Operators returns the fixed operator set in its canonical order.
func Operators() [4]Operator {
	return [4]Operator{OpAdd, OpSub, OpMul, OpDiv}
}

func (o Operator) String() string { return string(rune(o)) }

// Shape identifies one of the five fixed parenthesization templates for
// combining four operands with three operators.
type Shape int

const (
	ShapeSimple      Shape = iota // a+b+c+d, used only when no * or / appears
	ShapeSequential               // ((a.b).c).d
	ShapePaired                   // (a.b).(c.d)
	ShapeMiddleLeft               // (a.(b.c)).d
	ShapeMiddleRight              // a.((b.c).d)
)

func (s Shape) String() string {
	switch s {
	case ShapeSimple:
		return "simple"
	case ShapeSequential:
		return "sequential"
	case ShapePaired:
		return "paired"
	case ShapeMiddleLeft:
		return "middle-left"
	case ShapeMiddleRight:
		return "middle-right"
	}
	return "unknown"
}

// DigitWidth selects the range puzzle numbers are drawn from.
type DigitWidth int

const (
	WidthSingle DigitWidth = 1 // numbers in 1..9
	WidthDouble DigitWidth = 2 // numbers in 1..24
)

// Max returns the largest number the width permits.
func (w DigitWidth) Max() int {
	if w == WidthDouble {
		return 24
	}
	return 9
}
