package dsl

import (
	"dronespire.ai/internal/sim/coords"
	"dronespire.ai/internal/sim/tasks"
)

// builtins the compiler accepts as expression-statement calls.
var builtinFuncs = []string{"mine_box"}

// Compile lowers a program into tasks, in program order. It is pure and
// reentrant: the variable scope lives only for the duration of the call.
// Any malformed-but-well-typed input yields a *CompileError, never a panic.
func Compile(p *Program) ([]tasks.Task, error) {
	if p.Node != NodeProgram {
		return nil, compileErrf(ErrInvalidRoot, "root node is %q, want %q", p.Node, NodeProgram)
	}
	// One flat scope for the whole program; a later Let overwrites an
	// earlier binding of the same name.
	scope := map[string]Expr{}
	var out []tasks.Task
	for _, stmt := range p.Statements {
		switch s := stmt.(type) {
		case LetStmt:
			if s.Ty != "TileBox" {
				return nil, compileErrf(ErrUnsupportedNode, "let type %q", s.Ty)
			}
			scope[s.Name] = s.Value
		case ExprStmt:
			call, ok := s.Expr.(Call)
			if !ok {
				return nil, compileErrf(ErrUnsupportedNode, "only calls may appear as statements")
			}
			if call.Func != "mine_box" {
				if hint := closestName(call.Func, builtinFuncs); hint != "" {
					return nil, compileErrf(ErrUnsupportedNode, "call %q (did you mean %q?)", call.Func, hint)
				}
				return nil, compileErrf(ErrUnsupportedNode, "call %q", call.Func)
			}
			if len(call.Args) != 1 {
				return nil, compileErrf(ErrInvalidArg, "mine_box takes 1 argument, got %d", len(call.Args))
			}
			b, err := resolveBox(call.Args[0], scope)
			if err != nil {
				return nil, err
			}
			out = append(out, tasks.MineBox(b))
		case ForInStmt:
			return nil, compileErrf(ErrUnsupportedNode, "for-in loops are not supported")
		default:
			return nil, compileErrf(ErrUnsupportedNode, "statement %T", stmt)
		}
	}
	return out, nil
}

// resolveBox reduces an expression to a concrete box. VarRef resolves one
// scope lookup and recurses, so bindings of bindings would still terminate.
func resolveBox(e Expr, scope map[string]Expr) (coords.TileBox3, error) {
	switch v := e.(type) {
	case TileBoxFromCoords:
		if v.Min.Node != NodeTileCoord || v.Max.Node != NodeTileCoord {
			return coords.TileBox3{}, compileErrf(ErrSchema,
				"TileBoxFromCoords min/max must be TileCoord nodes, got %q/%q", v.Min.Node, v.Max.Node)
		}
		b, err := coords.NewTileBox3(
			coords.New(v.Min.X, v.Min.Y, v.Min.Z),
			coords.New(v.Max.X, v.Max.Y, v.Max.Z),
		)
		if err != nil {
			return coords.TileBox3{}, compileErrf(ErrInvalidArg, "%v", err)
		}
		return b, nil
	case VarRef:
		bound, ok := scope[v.Name]
		if !ok {
			names := make([]string, 0, len(scope))
			for n := range scope {
				names = append(names, n)
			}
			if hint := closestName(v.Name, names); hint != "" {
				return coords.TileBox3{}, compileErrf(ErrUnknownVar, "%q (did you mean %q?)", v.Name, hint)
			}
			return coords.TileBox3{}, compileErrf(ErrUnknownVar, "%q", v.Name)
		}
		return resolveBox(bound, scope)
	default:
		return coords.TileBox3{}, compileErrf(ErrInvalidArg, "expression does not produce a box")
	}
}
