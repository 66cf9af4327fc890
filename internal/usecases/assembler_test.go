package usecases

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssembleReplyAppendsDisclaimerVerbatim(t *testing.T) {
	got := AssembleReply(true, "Une SCI est...", nil)
	require.Equal(t, "Une SCI est...\n\n"+Disclaimer, got)
	require.True(t, strings.HasSuffix(got, Disclaimer))
}

func TestAssembleReplyOutOfScopeIgnoresOtherInputs(t *testing.T) {
	require.Equal(t, OutOfScopeMessage, AssembleReply(false, "", nil))
	require.Equal(t, OutOfScopeMessage, AssembleReply(false, "some completion", nil))
	require.Equal(t, OutOfScopeMessage, AssembleReply(false, "", errors.New("boom")))
}

func TestAssembleReplyFallbackHidesErrorDetail(t *testing.T) {
	got := AssembleReply(true, "", errors.New("401 unauthorized: invalid api key"))
	require.Equal(t, FallbackMessage, got)
	require.NotContains(t, got, "401")
	require.NotContains(t, got, "api key")
}

func TestAssembleReplyIdempotent(t *testing.T) {
	first := AssembleReply(true, "Réponse.", nil)
	second := AssembleReply(true, "Réponse.", nil)
	require.Equal(t, first, second)
}
