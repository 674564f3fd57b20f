package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// OptimizationOption pairs the text shown to the user with the flag passed to the compiler.
type OptimizationOption struct {
	Text string
	Flag string
}

var optimizations = []OptimizationOption{
	{Text: "-O0 (Optimize for Compile Time)", Flag: "-O0"},
	{Text: "-O1 (Optimize for code size and speed)", Flag: "-O1"},
	{Text: "-O2 (Optimize for code size and speed, more than -O1)", Flag: "-O2"},
	{Text: "-O3 (Optimize for code size and speed, more than -O2)", Flag: "-O3"},
}

var standards = []string{"c++14", "c++11", "c++98", "c++17", "c++20"}

// Optimizations returns the optimization levels in presentation order.
// The returned slice is a copy.
func Optimizations() []OptimizationOption {
	return slices.Clone(optimizations)
}

// Standards returns the language standards in presentation order. The first
// entry is the default. The returned slice is a copy.
func Standards() []string {
	return slices.Clone(standards)
}

// DefaultStandard is the standard selected when nothing else is configured.
func DefaultStandard() string {
	return standards[0]
}

// DefaultOptimization is the optimization level selected when nothing else is configured.
func DefaultOptimization() OptimizationOption {
	return optimizations[0]
}

// LookupStandard validates a standard identifier.
func LookupStandard(std string) (string, error) {
	if !slices.Contains(standards, std) {
		return "", zerr.With(ErrInvalidStandard, "standard", std)
	}
	return std, nil
}

// LookupOptimization finds the optimization option for a flag. Both "-O2" and "2" are accepted.
func LookupOptimization(flag string) (OptimizationOption, error) {
	if len(flag) == 1 {
		flag = "-O" + flag
	}
	for _, opt := range optimizations {
		if opt.Flag == flag {
			return opt, nil
		}
	}
	return OptimizationOption{}, zerr.With(ErrInvalidOptimization, "flag", flag)
}
