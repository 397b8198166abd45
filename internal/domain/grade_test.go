package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrade(t *testing.T) {
	for g := Grade(0); g < PassThreshold; g++ {
		assert.True(t, g.Failed(), "grade %d", g)
		assert.Equal(t, "again", g.String())
	}
	assert.False(t, Hard.Failed())
	assert.False(t, Good.Failed())
	assert.False(t, Easy.Failed())
	assert.False(t, Grade(-1).Valid())
	assert.False(t, Grade(6).Valid())
	assert.Equal(t, "Grade(9)", Grade(9).String())
}

func TestParseGrade(t *testing.T) {
	tests := []struct {
		in      string
		want    Grade
		wantErr bool
	}{
		{in: "good", want: Good},
		{in: " Easy ", want: Easy},
		{in: "again", want: Again},
		{in: "3", want: Hard},
		{in: "1", want: Grade(1)},
		{in: "6", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "great", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGrade(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidGrade))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGradeText(t *testing.T) {
	b, err := Hard.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "hard", string(b))

	var g Grade
	require.NoError(t, g.UnmarshalText([]byte("easy")))
	assert.Equal(t, Easy, g)

	_, err = Grade(12).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidGrade)
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" verbs ", "", "nouns", "verbs", "  "})
	assert.Equal(t, []string{"verbs", "nouns"}, got)
}
