package dsl

// Version is the program document version this compiler understands.
const Version = 1

// Node tags used as the JSON discriminant on every AST node.
const (
	NodeProgram           = "Program"
	NodeLet               = "Let"
	NodeExprStmt          = "ExprStmt"
	NodeForIn             = "ForIn"
	NodeTileBoxFromCoords = "TileBoxFromCoords"
	NodeTileCoord         = "TileCoord"
	NodeVarRef            = "VarRef"
	NodeCall              = "Call"
	NodeIterTiles         = "IterTiles"
	NodeIntLiteral        = "IntLiteral"
)

// Program is the root of a player-authored program. Node keeps the raw
// discriminant so the compiler can reject documents whose root is not
// tagged "Program" with a typed error instead of a decode failure.
type Program struct {
	Version    int
	Node       string
	Statements []Statement
}

// Statement is the closed set of statement forms. The grammar is fixed;
// adding a form means adding a case to the compiler, not new dispatch.
type Statement interface {
	stmtNode()
}

type LetStmt struct {
	Name  string
	Ty    string
	Value Expr
}

type ExprStmt struct {
	Expr Expr
}

// ForInStmt parses but is always rejected by the compiler: loop bodies
// would need their own scope, which the flat-scope compiler does not have.
type ForInStmt struct {
	Var  VarDecl
	Iter Expr
	Body []Statement
}

type VarDecl struct {
	Name string `json:"name"`
	Ty   string `json:"ty"`
}

func (LetStmt) stmtNode()   {}
func (ExprStmt) stmtNode()  {}
func (ForInStmt) stmtNode() {}

// Expr is the closed set of expression forms.
type Expr interface {
	exprNode()
}

type TileBoxFromCoords struct {
	Min Coord
	Max Coord
}

type TileCoordExpr struct {
	X int
	Y int
	Z int
}

type VarRef struct {
	Name string
}

type Call struct {
	Func string
	Args []Expr
}

// IterTilesExpr parses but is not compiled in this version.
type IterTilesExpr struct {
	Box Expr
}

// IntLiteral parses but is not compiled in this version.
type IntLiteral struct {
	Value int64
}

func (TileBoxFromCoords) exprNode() {}
func (TileCoordExpr) exprNode()     {}
func (VarRef) exprNode()            {}
func (Call) exprNode()              {}
func (IterTilesExpr) exprNode()     {}
func (IntLiteral) exprNode()        {}

// Coord is a coordinate sub-node of TileBoxFromCoords. Its raw Node tag is
// kept so the compiler can check it is actually a TileCoord.
type Coord struct {
	Node string `json:"node"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Z    int    `json:"z,omitempty"`
}
