package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sidimedmar/profeleve/internal/i18n"
)

func TestGetKnownLanguages(t *testing.T) {
	fr, ok := i18n.Get("fr")
	require.True(t, ok)
	require.Equal(t, "Professeur", fr.RoleProfessor)

	ar, ok := i18n.Get("ar")
	require.True(t, ok)
	require.NotEmpty(t, ar.RoleProfessor)
	require.NotEqual(t, fr.RoleProfessor, ar.RoleProfessor)
}

func TestGetUnknownLanguage(t *testing.T) {
	_, ok := i18n.Get("en")
	require.False(t, ok)
}
