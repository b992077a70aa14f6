// Package corovet defines an Analyzer that reports coroutine handles escaping
// the body they were passed to, and yields performed from foreign goroutines.
//
// A Handle is only valid while its coroutine's body runs, and Yield must be
// called from the body's own goroutine. Neither rule is enforceable by the
// type system, so corovet flags the common ways code breaks them: storing a
// handle in a package variable, or into a struct field, map element or
// pointer target reachable from a parameter or receiver, or returning it
// (escapes), and sending it on a channel, passing it to a go statement's
// call, or calling Yield on a captured handle inside a spawned function
// literal (goroutine boundaries). Stores whose destination is rooted at a
// body-local variable stay inside the function and are not reported.
package corovet

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// coroPackage is the import path of the package defining Handle.
const coroPackage = "github.com/yieldpoint/coro"

const (
	escapeMessage  = "coroutine handle stored outside its body; a handle must not outlive the body it was passed to"
	foreignMessage = "coroutine handle crosses a goroutine boundary; Yield must be called from the coroutine body"
)

var Analyzer = &analysis.Analyzer{
	Name:     "corovet",
	Doc:      "report coroutine handles escaping their body or yielding from foreign goroutines",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	in := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.AssignStmt)(nil),
		(*ast.SendStmt)(nil),
		(*ast.ReturnStmt)(nil),
		(*ast.GoStmt)(nil),
	}

	in.WithStack(nodeFilter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}
		switch n := n.(type) {
		case *ast.AssignStmt:
			if len(n.Lhs) != len(n.Rhs) {
				return true // multi-value assignment from a single call
			}
			for i, lhs := range n.Lhs {
				if isHandle(pass, n.Rhs[i]) && escapingDest(pass, lhs, stack) {
					pass.Reportf(lhs.Pos(), "%s", escapeMessage)
				}
			}

		case *ast.SendStmt:
			if isHandle(pass, n.Value) {
				pass.Reportf(n.Value.Pos(), "%s", foreignMessage)
			}

		case *ast.ReturnStmt:
			for _, res := range n.Results {
				if isHandle(pass, res) {
					pass.Reportf(res.Pos(), "%s", escapeMessage)
				}
			}

		case *ast.GoStmt:
			checkGoStmt(pass, n)
		}
		return true
	})
	return nil, nil
}

// checkGoStmt flags handles carried into a goroutine, either as arguments to
// the spawned call or used for a Yield inside a spawned function literal.
func checkGoStmt(pass *analysis.Pass, n *ast.GoStmt) {
	for _, arg := range n.Call.Args {
		if isHandle(pass, arg) {
			pass.Reportf(arg.Pos(), "%s", foreignMessage)
		}
	}
	if sel, ok := n.Call.Fun.(*ast.SelectorExpr); ok && sel.Sel.Name == "Yield" && isHandle(pass, sel.X) {
		pass.Reportf(n.Call.Pos(), "%s", foreignMessage)
	}
	fn, ok := n.Call.Fun.(*ast.FuncLit)
	if !ok {
		return
	}
	ast.Inspect(fn.Body, func(m ast.Node) bool {
		if _, ok := m.(*ast.GoStmt); ok {
			return false // reported on its own visit
		}
		call, ok := m.(*ast.CallExpr)
		if !ok {
			return true
		}
		if sel, ok := call.Fun.(*ast.SelectorExpr); ok && sel.Sel.Name == "Yield" && isHandle(pass, sel.X) {
			pass.Reportf(call.Pos(), "%s", foreignMessage)
		}
		return true
	})
}

// escapingDest reports whether assigning to lhs stores the value where it can
// outlive the enclosing function. The destination chain is peeled to its
// root: only package-level variables and chains rooted at a parameter, named
// result or receiver count, since those are reachable by the caller. A chain
// rooted at a body-local variable stays inside the function.
func escapingDest(pass *analysis.Pass, lhs ast.Expr, stack []ast.Node) bool {
	for {
		switch e := lhs.(type) {
		case *ast.ParenExpr:
			lhs = e.X
		case *ast.SelectorExpr:
			if id, ok := e.X.(*ast.Ident); ok {
				if _, ok := pass.TypesInfo.ObjectOf(id).(*types.PkgName); ok {
					return true // qualified package-level variable
				}
			}
			lhs = e.X
		case *ast.IndexExpr:
			lhs = e.X
		case *ast.StarExpr:
			lhs = e.X
		case *ast.Ident:
			v, ok := pass.TypesInfo.ObjectOf(e).(*types.Var)
			if !ok {
				return false
			}
			if v.Parent() == pass.Pkg.Scope() {
				return true
			}
			return isParameter(pass, v, stack)
		default:
			return false
		}
	}
}

// isParameter reports whether v is a parameter, named result or receiver of
// a function enclosing the statement being checked.
func isParameter(pass *analysis.Pass, v *types.Var, stack []ast.Node) bool {
	for i := len(stack) - 1; i >= 0; i-- {
		var sig *types.Signature
		switch f := stack[i].(type) {
		case *ast.FuncDecl:
			fn, ok := pass.TypesInfo.Defs[f.Name].(*types.Func)
			if !ok {
				continue
			}
			sig = fn.Type().(*types.Signature)
		case *ast.FuncLit:
			s, ok := pass.TypesInfo.TypeOf(f).(*types.Signature)
			if !ok {
				continue
			}
			sig = s
		default:
			continue
		}
		if v == sig.Recv() {
			return true
		}
		params, results := sig.Params(), sig.Results()
		for j := 0; j < params.Len(); j++ {
			if v == params.At(j) {
				return true
			}
		}
		for j := 0; j < results.Len(); j++ {
			if v == results.At(j) {
				return true
			}
		}
	}
	return false
}

// isHandle reports whether e's type is *coro.Handle or coro.Handle, for any
// instantiation.
func isHandle(pass *analysis.Pass, e ast.Expr) bool {
	t := types.Unalias(pass.TypesInfo.TypeOf(e))
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj != nil && obj.Name() == "Handle" && obj.Pkg() != nil && obj.Pkg().Path() == coroPackage
}
