package commands

import (
	"errors"

	"finsight/internal/categorizer"
	"finsight/internal/database"
	apperrors "finsight/internal/errors"
	"finsight/internal/parser"
	"finsight/internal/repositories"
	"finsight/internal/services"

	"github.com/spf13/cobra"
)

// coded wraps a RunE so failures leave the CLI as pipeline errors with
// a registered code, keeping exit diagnostics stable across refactors
// of the underlying packages.
func coded(run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if err == nil {
			return nil
		}
		var pe *apperrors.PipelineError
		if errors.As(err, &pe) {
			return err
		}
		return apperrors.New(codeFor(err),
			apperrors.WithDetails(err.Error()),
			apperrors.WithCause(err))
	}
}

func codeFor(err error) apperrors.ErrorCode {
	var recordErr *parser.RecordError
	switch {
	case errors.Is(err, parser.ErrUnsupportedBank):
		return apperrors.ParserUnsupportedBank
	case errors.Is(err, parser.ErrUnsupportedFormat):
		return apperrors.ParserUnsupportedFormat
	case errors.Is(err, services.ErrEmptyStatement):
		return apperrors.ParserEmptyStatement
	case errors.As(err, &recordErr):
		return apperrors.ParserMalformedRecord
	case errors.Is(err, categorizer.ErrInsufficientTrainingData):
		return apperrors.CategoryInsufficientTrainingData
	case errors.Is(err, categorizer.ErrTrainingInProgress):
		return apperrors.CategoryTrainingInProgress
	case errors.Is(err, categorizer.ErrModelUnavailable):
		return apperrors.CategoryModelUnavailable
	case errors.Is(err, database.ErrUnsupportedDriver):
		return apperrors.SystemConfigurationError
	case errors.Is(err, services.ErrNotFound):
		return apperrors.StoreUserNotFound
	case errors.Is(err, repositories.ErrTransactionNotFound):
		return apperrors.StoreTransactionNotFound
	case errors.Is(err, services.ErrUserExists),
		errors.Is(err, services.ErrWeakPassword):
		return apperrors.StoreSaveFailed
	default:
		return apperrors.SystemInternalError
	}
}
