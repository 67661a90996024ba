// Package golangcilintmessageforge provides a plugin for golangci-lint to
// integrate the messageforge analyzer. To build a custom golangci-lint binary
// with this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-messageforge binary that reports misused
// messageforge directives and message types which cannot be derived.
package golangcilintmessageforge

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/kinghuynh/messageforge/pkg/forgeanalysis"
)

func init() {
	register.Plugin("messageforge", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return Linter{}, nil
}

type Linter struct{}

func (Linter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{forgeanalysis.Analyzer}, nil
}

func (Linter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
