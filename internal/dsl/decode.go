package dsl

import (
	"encoding/json"
	"fmt"
)

// baseNode routes a raw JSON node by its discriminant, like the protocol
// layer routes messages by type.
type baseNode struct {
	Node string `json:"node"`
}

func (p *Program) UnmarshalJSON(b []byte) error {
	var raw struct {
		Version    int               `json:"version"`
		Node       string            `json:"node"`
		Statements []json.RawMessage `json:"statements"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	p.Version = raw.Version
	p.Node = raw.Node
	p.Statements = p.Statements[:0]
	for i, rs := range raw.Statements {
		s, err := decodeStatement(rs)
		if err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
		p.Statements = append(p.Statements, s)
	}
	return nil
}

func (p Program) MarshalJSON() ([]byte, error) {
	stmts := p.Statements
	if stmts == nil {
		stmts = []Statement{}
	}
	return json.Marshal(struct {
		Version    int         `json:"version"`
		Node       string      `json:"node"`
		Statements []Statement `json:"statements"`
	}{p.Version, p.Node, stmts})
}

func decodeStatement(b []byte) (Statement, error) {
	var base baseNode
	if err := json.Unmarshal(b, &base); err != nil {
		return nil, err
	}
	switch base.Node {
	case NodeLet:
		var raw struct {
			Name  string          `json:"name"`
			Ty    string          `json:"ty"`
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, err
		}
		value, err := decodeExpr(raw.Value)
		if err != nil {
			return nil, fmt.Errorf("let %q: %w", raw.Name, err)
		}
		return LetStmt{Name: raw.Name, Ty: raw.Ty, Value: value}, nil
	case NodeExprStmt:
		var raw struct {
			Expr json.RawMessage `json:"expr"`
		}
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, err
		}
		expr, err := decodeExpr(raw.Expr)
		if err != nil {
			return nil, err
		}
		return ExprStmt{Expr: expr}, nil
	case NodeForIn:
		var raw struct {
			Var  VarDecl           `json:"var"`
			Iter json.RawMessage   `json:"iter"`
			Body []json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, err
		}
		iter, err := decodeExpr(raw.Iter)
		if err != nil {
			return nil, err
		}
		body := make([]Statement, 0, len(raw.Body))
		for i, rb := range raw.Body {
			s, err := decodeStatement(rb)
			if err != nil {
				return nil, fmt.Errorf("for-in body %d: %w", i, err)
			}
			body = append(body, s)
		}
		return ForInStmt{Var: raw.Var, Iter: iter, Body: body}, nil
	default:
		return nil, fmt.Errorf("unknown statement node %q", base.Node)
	}
}

func decodeExpr(b []byte) (Expr, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("missing expression")
	}
	var base baseNode
	if err := json.Unmarshal(b, &base); err != nil {
		return nil, err
	}
	switch base.Node {
	case NodeTileBoxFromCoords:
		var raw struct {
			Min Coord `json:"min"`
			Max Coord `json:"max"`
		}
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, err
		}
		return TileBoxFromCoords{Min: raw.Min, Max: raw.Max}, nil
	case NodeTileCoord:
		var raw struct {
			X int `json:"x"`
			Y int `json:"y"`
			Z int `json:"z"`
		}
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, err
		}
		return TileCoordExpr{X: raw.X, Y: raw.Y, Z: raw.Z}, nil
	case NodeVarRef:
		var raw struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, err
		}
		return VarRef{Name: raw.Name}, nil
	case NodeCall:
		var raw struct {
			Func string            `json:"func"`
			Args []json.RawMessage `json:"args"`
		}
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, err
		}
		args := make([]Expr, 0, len(raw.Args))
		for i, ra := range raw.Args {
			a, err := decodeExpr(ra)
			if err != nil {
				return nil, fmt.Errorf("call %q arg %d: %w", raw.Func, i, err)
			}
			args = append(args, a)
		}
		return Call{Func: raw.Func, Args: args}, nil
	case NodeIterTiles:
		var raw struct {
			Box json.RawMessage `json:"box"`
		}
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, err
		}
		box, err := decodeExpr(raw.Box)
		if err != nil {
			return nil, err
		}
		return IterTilesExpr{Box: box}, nil
	case NodeIntLiteral:
		var raw struct {
			Value int64 `json:"value"`
		}
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, err
		}
		return IntLiteral{Value: raw.Value}, nil
	default:
		return nil, fmt.Errorf("unknown expression node %q", base.Node)
	}
}

func (s LetStmt) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Node  string `json:"node"`
		Name  string `json:"name"`
		Ty    string `json:"ty"`
		Value Expr   `json:"value"`
	}{NodeLet, s.Name, s.Ty, s.Value})
}

func (s ExprStmt) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Node string `json:"node"`
		Expr Expr   `json:"expr"`
	}{NodeExprStmt, s.Expr})
}

func (s ForInStmt) MarshalJSON() ([]byte, error) {
	body := s.Body
	if body == nil {
		body = []Statement{}
	}
	return json.Marshal(struct {
		Node string      `json:"node"`
		Var  VarDecl     `json:"var"`
		Iter Expr        `json:"iter"`
		Body []Statement `json:"body"`
	}{NodeForIn, s.Var, s.Iter, body})
}

func (e TileBoxFromCoords) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Node string `json:"node"`
		Min  Coord  `json:"min"`
		Max  Coord  `json:"max"`
	}{NodeTileBoxFromCoords, e.Min, e.Max})
}

func (e TileCoordExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Node string `json:"node"`
		X    int    `json:"x"`
		Y    int    `json:"y"`
		Z    int    `json:"z"`
	}{NodeTileCoord, e.X, e.Y, e.Z})
}

func (e VarRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Node string `json:"node"`
		Name string `json:"name"`
	}{NodeVarRef, e.Name})
}

func (e Call) MarshalJSON() ([]byte, error) {
	args := e.Args
	if args == nil {
		args = []Expr{}
	}
	return json.Marshal(struct {
		Node string `json:"node"`
		Func string `json:"func"`
		Args []Expr `json:"args"`
	}{NodeCall, e.Func, args})
}

func (e IterTilesExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Node string `json:"node"`
		Box  Expr   `json:"box"`
	}{NodeIterTiles, e.Box})
}

func (e IntLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Node  string `json:"node"`
		Value int64  `json:"value"`
	}{NodeIntLiteral, e.Value})
}
