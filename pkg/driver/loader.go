package driver

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/log"
	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/crypto/sha3"

	"github.com/SamuelScheit/xlang/pkg/ast"
	"github.com/SamuelScheit/xlang/pkg/lexer"
	"github.com/SamuelScheit/xlang/pkg/parser"
	"github.com/SamuelScheit/xlang/pkg/token"
)

// SourceExtension is the file extension of xlang programs.
const SourceExtension = ".xl"

// Hash identifies source text by its SHA3-256 digest.
type Hash [32]byte

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// HashSource digests source text.
func HashSource(source string) Hash {
	return sha3.Sum256([]byte(source))
}

// Program is a lexed and parsed source file.
type Program struct {
	Path       string
	Hash       Hash
	Source     string
	Tokens     []token.Token
	Statements []ast.Statement
	Warnings   []*parser.SyntaxError
}

// Loader reads and parses source files, keeping recently parsed programs
// keyed by content hash so unchanged sources are not parsed twice.
type Loader struct {
	cache *lru.ARCCache
	log   log.Logger
}

// NewLoader creates a loader caching up to cacheSize programs. A size of
// zero disables caching.
func NewLoader(cacheSize int) (*Loader, error) {
	l := &Loader{log: log.New("module", "loader")}
	if cacheSize > 0 {
		cache, err := lru.NewARC(cacheSize)
		if err != nil {
			return nil, fmt.Errorf("loader: create cache: %w", err)
		}
		l.cache = cache
	}
	return l, nil
}

// Load reads and parses the file at path.
func (l *Loader) Load(path string) (*Program, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("loader: resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", absPath, err)
	}
	return l.LoadSource(absPath, string(data))
}

// LoadSource parses source text attributed to path. Lexical and syntax
// errors are returned unwrapped so callers can inspect their positions.
func (l *Loader) LoadSource(path string, source string) (*Program, error) {
	hash := HashSource(source)
	if l.cache != nil {
		if cached, ok := l.cache.Get(hash); ok {
			l.log.Trace("Parse cache hit", "path", path, "hash", hash)
			program := *cached.(*Program)
			program.Path = path
			return &program, nil
		}
	}

	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, err
	}
	p := parser.New(tokens)
	statements, err := p.Parse()
	if err != nil {
		return nil, err
	}
	program := &Program{
		Path:       path,
		Hash:       hash,
		Source:     source,
		Tokens:     tokens,
		Statements: statements,
		Warnings:   p.Warnings,
	}
	if l.cache != nil {
		l.cache.Add(hash, program)
		l.log.Trace("Parse cache miss", "path", path, "hash", hash, "statements", len(statements))
	}
	return program, nil
}

// Cached reports how many programs the loader currently holds.
func (l *Loader) Cached() int {
	if l.cache == nil {
		return 0
	}
	return l.cache.Len()
}

// Purge drops every cached program.
func (l *Loader) Purge() {
	if l.cache != nil {
		l.cache.Purge()
	}
}
