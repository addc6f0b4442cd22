package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipelineError_Error(t *testing.T) {
	err := New(ParserUnsupportedFormat)
	assert.Equal(t, "PARSER_002: Unsupported statement file format", err.Error())

	detailed := New(ParserMalformedRecord,
		WithDetails("line 3: unparseable date", "line 7: no non-zero amount"))
	assert.Equal(t,
		"PARSER_003: Statement record failed dialect parsing "+
			"(line 3: unparseable date; line 7: no non-zero amount)",
		detailed.Error())
}

func TestPipelineError_MessageOverride(t *testing.T) {
	err := New(StoreSaveFailed, WithMessage("could not write batch"))
	assert.Equal(t, "STORE_003: could not write batch", err.Error())
}

func TestPipelineError_Unwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := New(StoreSaveFailed, WithCause(cause))

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, StoreSaveFailed, CodeOf(err))
}

func TestCodeOf_FallsBackToSystemError(t *testing.T) {
	assert.Equal(t, SystemInternalError, CodeOf(stderrors.New("unregistered")))
}

func TestErrorCodeRegistry(t *testing.T) {
	assert.True(t, IsValidErrorCode(CategoryModelUnavailable))
	assert.False(t, IsValidErrorCode(ErrorCode("PARSER_999")))
	assert.Equal(t, "An error occurred", GetErrorMessage(ErrorCode("PARSER_999")))
}
