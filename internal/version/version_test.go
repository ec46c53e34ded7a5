package version

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBiblioVersion(t *testing.T) {
	t.Run("follows semver format", func(t *testing.T) {
		// Simple semver pattern: major.minor.patch
		semverPattern := regexp.MustCompile(`^\d+\.\d+\.\d+$`)
		assert.True(t, semverPattern.MatchString(BiblioVersion), "BiblioVersion should follow semver format (x.y.z)")
	})

	t.Run("is not empty", func(t *testing.T) {
		assert.NotEmpty(t, BiblioVersion)
	})
}

func TestBiblioStorageEngineVersion(t *testing.T) {
	t.Run("follows semver format", func(t *testing.T) {
		// Simple semver pattern: major.minor.patch
		semverPattern := regexp.MustCompile(`^\d+\.\d+\.\d+$`)
		assert.True(t, semverPattern.MatchString(BiblioStorageEngineVersion), "BiblioStorageEngineVersion should follow semver format (x.y.z)")
	})

	t.Run("is not empty", func(t *testing.T) {
		assert.NotEmpty(t, BiblioStorageEngineVersion)
	})
}

func TestVersionConsistency(t *testing.T) {
	t.Run("versions are defined", func(t *testing.T) {
		// Both versions should be defined
		assert.NotEqual(t, "", BiblioVersion)
		assert.NotEqual(t, "", BiblioStorageEngineVersion)
	})
}
