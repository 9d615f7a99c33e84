// Package ram provides a convenience API for parsing and running Ram
// programs, tying together the parser and the evaluator.
package ram

import (
	"io"

	"github.com/ramlang/ram/ast"
	"github.com/ramlang/ram/evaluator"
	"github.com/ramlang/ram/object"
	"github.com/ramlang/ram/parser"
)

// Option describes a function used to configure a Ram evaluation.
type Option func(*config)

type config struct {
	globals map[string]object.Object
	output  io.Writer
}

// WithGlobal supplies a single named global variable to the evaluation.
// This option is additive, so multiple WithGlobal options may be supplied.
func WithGlobal(name string, value object.Object) Option {
	return func(cfg *config) {
		cfg.globals[name] = value
	}
}

// WithOutput directs display statement output to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(cfg *config) {
		cfg.output = w
	}
}

// Parse parses raw Ram source text into a Program.
func Parse(source string) (*ast.Program, error) {
	return parser.Parse(source)
}

// Run parses and executes Ram source text.
func Run(source string, options ...Option) error {
	program, err := parser.Parse(source)
	if err != nil {
		return err
	}
	return Eval(program, options...)
}

// RunFile parses and executes the Ram source file at path.
func RunFile(path string, options ...Option) error {
	program, err := parser.ParseFile(path)
	if err != nil {
		return err
	}
	return Eval(program, options...)
}

// Eval executes an already-parsed program.
func Eval(program *ast.Program, options ...Option) error {
	cfg := &config{globals: map[string]object.Object{}}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	env := object.NewEnvironment()
	for name, value := range cfg.globals {
		env.Set(name, value)
	}
	var evalOpts []evaluator.Option
	if cfg.output != nil {
		evalOpts = append(evalOpts, evaluator.WithOutput(cfg.output))
	}
	return evaluator.New(evalOpts...).Eval(program, env)
}
