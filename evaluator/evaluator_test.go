package evaluator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ramlang/ram/errz"
	"github.com/ramlang/ram/object"
	"github.com/ramlang/ram/parser"
)

// run parses and evaluates source, returning the display output.
func run(t *testing.T, source string) (string, error) {
	t.Helper()
	program, err := parser.Parse(source)
	require.NoError(t, err)
	var out bytes.Buffer
	e := New(WithOutput(&out))
	evalErr := e.Eval(program, object.NewEnvironment())
	return out.String(), evalErr
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"display 10 + 5", "15\n"},
		{"display 10 / 4", "2.5\n"},
		{`display "Hello World!"`, "Hello World!\n"},
		{"display true or false", "true\n"},
		{"display not true", "false\n"},
		{"display (1) is (2)", "false\n"},
		{`display "Hello " + "World!"`, "Hello World!\n"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			out, err := run(t, tt.source)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestSetAndDisplay(t *testing.T) {
	source := `
set integer x to 5
set integer var1 to 10 * x + 5
display var1
`
	out, err := run(t, source)
	require.NoError(t, err)
	require.Equal(t, "55\n", out)
}

func TestResetRebinds(t *testing.T) {
	source := `
set integer x to 1
reset integer x to x + 1
display x
`
	out, err := run(t, source)
	require.NoError(t, err)
	require.Equal(t, "2\n", out)
}

func TestResetUndefined(t *testing.T) {
	_, err := run(t, "reset integer x to 1")
	require.Error(t, err)
	require.True(t, errz.IsKind(err, errz.Name))
}

func TestUndefinedVariable(t *testing.T) {
	_, err := run(t, "display nothing")
	require.Error(t, err)
	require.True(t, errz.IsKind(err, errz.Name))
	require.Contains(t, err.Error(), "Variable 'nothing' not defined.")
}

func TestDeclaredTypeMismatch(t *testing.T) {
	_, err := run(t, `set integer x to "nope"`)
	require.Error(t, err)
	require.True(t, errz.IsKind(err, errz.General))
}

func TestLoopInclusiveBounds(t *testing.T) {
	out, err := run(t, "loop with x from 0 to 4 {\n  display x\n}")
	require.NoError(t, err)
	require.Equal(t, "0\n1\n2\n3\n4\n", out)
}

func TestNestedLoops(t *testing.T) {
	source := `
loop with j from 1 to 2 {
    loop with k from 1 to 2 {
        display j + k
    }
}
`
	out, err := run(t, source)
	require.NoError(t, err)
	require.Equal(t, "2\n3\n3\n4\n", out)
}

func TestIfChainSelection(t *testing.T) {
	source := `
set integer var1 to 15
if (var1) is (0) {
    display "zero"
} else if (var1) is (15) {
    display "fifteen"
} else {
    display "other"
}
`
	out, err := run(t, source)
	require.NoError(t, err)
	require.Equal(t, "fifteen\n", out)
}

func TestIfElseFallthrough(t *testing.T) {
	source := `
set integer var1 to 7
if (var1) is (0) {
    display "zero"
} else if (var1) is (15) {
    display "fifteen"
} else {
    display "other"
}
`
	out, err := run(t, source)
	require.NoError(t, err)
	require.Equal(t, "other\n", out)
}

func TestConditionMustBeBool(t *testing.T) {
	_, err := run(t, "if 5 {\n  display 1\n}")
	require.Error(t, err)
	require.True(t, errz.IsKind(err, errz.General))
}

func TestFunctionCall(t *testing.T) {
	source := `
new function add takes (a, b) {
    send back a + b
}
display add(2, 3)
`
	out, err := run(t, source)
	require.NoError(t, err)
	require.Equal(t, "5\n", out)
}

func TestFunctionWithoutReturnDisplaysNothing(t *testing.T) {
	source := `
new function shout takes (message) {
    display message + "!"
}
call shout("hey")
`
	out, err := run(t, source)
	require.NoError(t, err)
	require.Equal(t, "hey!\n", out)
}

func TestFunctionEarlyReturn(t *testing.T) {
	source := `
new function sign takes (n) {
    if (n) is (0) {
        send back 0
    }
    send back n / n
}
display sign(0)
display sign(8)
`
	out, err := run(t, source)
	require.NoError(t, err)
	require.Equal(t, "0\n1\n", out)
}

func TestRecursion(t *testing.T) {
	source := `
new function fib takes (n) {
    if (n) is (0) {
        send back 0
    } else if (n) is (1) {
        send back 1
    }
    send back fib(n - 1) + fib(n - 2)
}
display fib(10)
`
	out, err := run(t, source)
	require.NoError(t, err)
	require.Equal(t, "55\n", out)
}

func TestReturnInsideLoop(t *testing.T) {
	source := `
new function firstOver takes (limit) {
    loop with i from 1 to 100 {
        if (i) is (limit) {
            send back i
        }
    }
    send back 0
}
display firstOver(3)
`
	out, err := run(t, source)
	require.NoError(t, err)
	require.Equal(t, "3\n", out)
}

func TestParamsShadowGlobals(t *testing.T) {
	source := `
set integer x to 1
new function bump takes (x) {
    send back x + 1
}
display bump(10)
display x
`
	out, err := run(t, source)
	require.NoError(t, err)
	require.Equal(t, "11\n1\n", out)
}

func TestDisplayCallWithoutSendBack(t *testing.T) {
	// A function with no send back yields an empty value, which display
	// renders as a bare line.
	source := `
new function greet takes () {
    display "hi"
}
display greet()
`
	out, err := run(t, source)
	require.NoError(t, err)
	require.Equal(t, "hi\n\n", out)
}

func TestArityMismatch(t *testing.T) {
	source := `
new function add takes (a, b) {
    send back a + b
}
display add(1)
`
	_, err := run(t, source)
	require.Error(t, err)
	require.True(t, errz.IsKind(err, errz.General))
}

func TestCallUndefinedFunction(t *testing.T) {
	_, err := run(t, "call missing(1)")
	require.Error(t, err)
	require.True(t, errz.IsKind(err, errz.Name))
}

func TestDivisionByZero(t *testing.T) {
	_, err := run(t, "display 1 / 0")
	require.Error(t, err)
	require.True(t, errz.IsKind(err, errz.General))
	require.Contains(t, err.Error(), "Division by zero.")
}

func TestTypeErrors(t *testing.T) {
	tests := []string{
		`display 1 + "a"`,
		`display "a" and true`,
		`display not 3`,
	}
	for _, source := range tests {
		t.Run(source, func(t *testing.T) {
			_, err := run(t, source)
			require.Error(t, err)
			require.True(t, errz.IsKind(err, errz.General))
		})
	}
}

func TestEqualityAcrossTypesIsFalse(t *testing.T) {
	out, err := run(t, `display (1) is ("1")`)
	require.NoError(t, err)
	require.Equal(t, "false\n", out)
}
