package report

import "github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/quiz"

type ReportContainer struct {
	Handler  *Handler
	Compiler *Compiler
}

func NewReportContainer(repo quiz.Repository) *ReportContainer {
	compiler := NewCompiler(repo)
	handler := NewHandler(compiler)

	return &ReportContainer{
		Handler:  handler,
		Compiler: compiler,
	}
}
