package common

import (
	"context"

	"resumescope/internal/errors"
	"resumescope/internal/types"
)

// AnalysisFunc runs the evaluation engine over a resume document path.
type AnalysisFunc func(context.Context, string) (*types.AnalysisResult, error)

// LogDetailsFunc defines how to log the start of an operation.
type LogDetailsFunc func(path string, cfg CommandConfig)

// RunAnalysisCommand encapsulates the common logic for document-based CLI
// commands: validate the input, run the analysis, format and write output.
func RunAnalysisCommand(
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	path string,
	analyze AnalysisFunc,
	logDetails LogDetailsFunc,
) error {
	fileProcessor := NewFileProcessor(logger)
	outputHandler := NewOutputHandler(logger)

	if err := fileProcessor.ValidateResumeFile(path); err != nil {
		return err
	}

	logDetails(path, cmdConfig)

	result, err := analyze(ctx, path)
	if err != nil {
		return err
	}

	return outputHandler.HandleOutput(result, cmdConfig)
}
