package parser

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/specialistvlad/fundingdsl/internal/builder"
	"github.com/specialistvlad/fundingdsl/internal/config"
	"github.com/specialistvlad/fundingdsl/internal/ctxlog"
	"github.com/specialistvlad/fundingdsl/internal/grammar"
	"github.com/specialistvlad/fundingdsl/internal/model"
	"github.com/specialistvlad/fundingdsl/internal/scanner"
)

// Engine names accepted by New.
const (
	EngineScanner = "scanner"
	EngineGrammar = "grammar"
)

// InlineSource is the source name reported for text passed to Parse.
const InlineSource = "<input>"

// Parser turns funding DSL text into a configuration.
type Parser interface {
	// Parse parses DSL text held in memory.
	Parse(ctx context.Context, src string) (*model.Configuration, error)
	// ParseFile reads and parses the file at path.
	ParseFile(ctx context.Context, path string) (*model.Configuration, error)
}

// DSLParser implements Parser with one engine and one builder. It keeps no
// per-call state and may be shared between goroutines.
type DSLParser struct {
	engine  string
	loader  config.Loader
	builder builder.Builder
}

// NewTextual returns a parser backed by the text scanner engine.
func NewTextual() *DSLParser {
	return &DSLParser{engine: EngineScanner, loader: scanner.NewLoader(), builder: builder.New()}
}

// NewGrammar returns a parser backed by the token grammar engine.
func NewGrammar() *DSLParser {
	return &DSLParser{engine: EngineGrammar, loader: grammar.NewLoader(), builder: builder.New()}
}

// Engines lists the engine names accepted by New.
func Engines() []string {
	return []string{EngineScanner, EngineGrammar}
}

// New returns a parser for the named engine. An empty name selects the
// scanner.
func New(engine string) (Parser, error) {
	switch engine {
	case "", EngineScanner:
		return NewTextual(), nil
	case EngineGrammar:
		return NewGrammar(), nil
	default:
		return nil, fmt.Errorf("unknown parser engine %q (want one of %v)", engine, Engines())
	}
}

// Engine returns the name of the engine behind p.
func (p *DSLParser) Engine() string {
	return p.engine
}

// Parse implements the Parser interface.
func (p *DSLParser) Parse(ctx context.Context, src string) (*model.Configuration, error) {
	return p.parse(ctx, InlineSource, []byte(src))
}

// ParseFile implements the Parser interface.
func (p *DSLParser) ParseFile(ctx context.Context, path string) (*model.Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Source: path, Err: err}
	}
	return p.parse(ctx, path, data)
}

func (p *DSLParser) parse(ctx context.Context, source string, src []byte) (*model.Configuration, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing funding DSL.", "source", source, "engine", p.engine)

	if !utf8.Valid(src) {
		return nil, &ParseError{Source: source, Err: ErrInvalidUTF8}
	}

	doc, err := p.loader.Load(ctx, source, src)
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	cfg, err := p.builder.Build(ctx, doc)
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	return cfg, nil
}
