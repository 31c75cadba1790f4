package analyzer

import (
	"go/ast"
	"go/types"
	"strconv"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	analyzerName = "forbiddencalls"
	analyzerDoc  = "reports panic, log.Fatal and os.Exit outside main, and any use of math/rand"
)

// Analyzer checks for forbidden calls (panic, log.Fatal, os.Exit) and for
// imports of non-cryptographic random number generators.
var Analyzer = &analysis.Analyzer{
	Name:     analyzerName,
	Doc:      analyzerDoc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var weakRandPackages = map[string]bool{
	"math/rand":    true,
	"math/rand/v2": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.ImportSpec)(nil),
		(*ast.CallExpr)(nil),
	}

	insp.Preorder(nodeFilter, func(node ast.Node) {
		switch n := node.(type) {
		case *ast.ImportSpec:
			checkImport(pass, n)
		case *ast.CallExpr:
			checkCall(pass, n)
		}
	})

	return nil, nil
}

func checkImport(pass *analysis.Pass, spec *ast.ImportSpec) {
	path, err := strconv.Unquote(spec.Path.Value)
	if err != nil {
		return
	}
	if weakRandPackages[path] {
		pass.Reportf(spec.Pos(), "%s is forbidden, use crypto/rand", path)
	}
}

func checkCall(pass *analysis.Pass, callExpr *ast.CallExpr) {
	switch fn := callExpr.Fun.(type) {
	case *ast.Ident:
		if fn.Name == "panic" {
			pass.Reportf(callExpr.Pos(), "panic is forbidden")
		}
	case *ast.SelectorExpr:
		checkSelectorExpr(pass, fn, callExpr)
	}
}

func checkSelectorExpr(pass *analysis.Pass, selectorExpr *ast.SelectorExpr, callExpr *ast.CallExpr) {
	ident, ok := selectorExpr.X.(*ast.Ident)
	if !ok || pass.TypesInfo == nil {
		return
	}

	pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
	if !ok {
		return
	}

	fn := selectorExpr.Sel.Name
	switch pkgName.Imported().Path() {
	case "log":
		if fn == "Fatal" || fn == "Fatalf" || fn == "Fatalln" {
			reportOutsideMain(pass, callExpr, "log."+fn)
		}
	case "os":
		if fn == "Exit" {
			reportOutsideMain(pass, callExpr, "os.Exit")
		}
	}
}

func reportOutsideMain(pass *analysis.Pass, callExpr *ast.CallExpr, name string) {
	if !isInMainFunction(pass, callExpr) {
		pass.Reportf(callExpr.Pos(), "%s is forbidden outside main function", name)
	}
}

func isInMainFunction(pass *analysis.Pass, node ast.Node) bool {
	for _, f := range pass.Files {
		for _, decl := range f.Decls {
			funcDecl, ok := decl.(*ast.FuncDecl)
			if !ok || funcDecl.Recv != nil || funcDecl.Name.Name != "main" || funcDecl.Body == nil {
				continue
			}
			if funcDecl.Body.Pos() <= node.Pos() && node.End() <= funcDecl.Body.End() {
				return true
			}
		}
	}
	return false
}
