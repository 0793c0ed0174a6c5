package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	translateCalls int
	detectCalls    int
	translateOut   string
	detectOut      string
	err            error
}

func (s *stubProvider) Translate(_ context.Context, _, _, _ string) (string, error) {
	s.translateCalls++
	if s.err != nil {
		return "", s.err
	}
	return s.translateOut, nil
}

func (s *stubProvider) DetectLanguage(_ context.Context, _ string) (string, error) {
	s.detectCalls++
	if s.err != nil {
		return "", s.err
	}
	return s.detectOut, nil
}

func TestFallbackTranslate_PrimarySuccessSkipsSecondary(t *testing.T) {
	primary := &stubProvider{translateOut: "hola"}
	secondary := &stubProvider{translateOut: "unused"}
	f := NewFallbackProvider(primary, secondary, nil)

	got, err := f.Translate(context.Background(), "hello", "Spanish", "en")
	require.NoError(t, err)
	assert.Equal(t, "hola", got)
	assert.Equal(t, 1, primary.translateCalls)
	assert.Equal(t, 0, secondary.translateCalls)
}

func TestFallbackTranslate_RetriesExactlyOnce(t *testing.T) {
	primary := &stubProvider{err: errors.New("connection refused")}
	secondary := &stubProvider{translateOut: "hola"}
	f := NewFallbackProvider(primary, secondary, nil)

	got, err := f.Translate(context.Background(), "hello", "Spanish", "en")
	require.NoError(t, err)
	assert.Equal(t, "hola", got)
	assert.Equal(t, 1, primary.translateCalls)
	assert.Equal(t, 1, secondary.translateCalls)
}

func TestFallbackTranslate_BothFail(t *testing.T) {
	primary := &stubProvider{err: errors.New("primary down")}
	secondary := &stubProvider{err: errors.New("secondary down")}
	f := NewFallbackProvider(primary, secondary, nil)

	_, err := f.Translate(context.Background(), "hello", "Spanish", "en")
	require.Error(t, err)
	assert.Equal(t, 1, primary.translateCalls)
	assert.Equal(t, 1, secondary.translateCalls, "the fallback is a single retry, never a loop")
}

func TestFallbackDetectLanguage(t *testing.T) {
	primary := &stubProvider{err: errors.New("timeout")}
	secondary := &stubProvider{detectOut: "ja"}
	f := NewFallbackProvider(primary, secondary, nil)

	code, err := f.DetectLanguage(context.Background(), "会議メモ")
	require.NoError(t, err)
	assert.Equal(t, "ja", code)
	assert.Equal(t, 1, primary.detectCalls)
	assert.Equal(t, 1, secondary.detectCalls)
}
