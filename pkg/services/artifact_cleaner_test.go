package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/ent"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestCleanupMaterialsRemovesRunDirectory(t *testing.T) {
	runsDir := t.TempDir()
	cleaner := NewArtifactCleaner(runsDir, t.TempDir())

	runDir := filepath.Join(runsDir, "20250101120000-1-2")
	writeFile(t, filepath.Join(runDir, "summary.txt"))

	cleaner.CleanupMaterials([]*ent.SourceMaterial{{
		OutputArtifacts: map[string]interface{}{"run_id": "20250101120000-1-2"},
	}})

	_, err := os.Stat(runDir)
	assert.True(t, os.IsNotExist(err))
}

func TestCleanupMaterialsRefusesRunIDEscapingRunsRoot(t *testing.T) {
	runsDir := t.TempDir()
	outside := t.TempDir()
	cleaner := NewArtifactCleaner(runsDir, t.TempDir())

	victim := filepath.Join(outside, "precious")
	writeFile(t, filepath.Join(victim, "file.txt"))

	cleaner.CleanupMaterials([]*ent.SourceMaterial{{
		OutputArtifacts: map[string]interface{}{"run_id": "../" + filepath.Base(outside) + "/precious"},
	}})

	_, err := os.Stat(victim)
	assert.NoError(t, err, "directories outside the runs root must survive")
}

func TestCleanupMaterialsFallsBackToArtifactPaths(t *testing.T) {
	cleaner := NewArtifactCleaner(t.TempDir(), t.TempDir())

	dir := t.TempDir()
	attributed := filepath.Join(dir, "speaker-attributed.txt")
	summary := filepath.Join(dir, "summary.txt")
	writeFile(t, attributed)
	writeFile(t, summary)

	cleaner.CleanupMaterials([]*ent.SourceMaterial{{
		OutputArtifacts: map[string]interface{}{
			"speaker_attributed_text_path": attributed,
			"individual_summary_path":      summary,
		},
	}})

	_, err := os.Stat(attributed)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(summary)
	assert.True(t, os.IsNotExist(err))
}

func TestCleanupMaterialsToleratesAbsentFiles(t *testing.T) {
	cleaner := NewArtifactCleaner(t.TempDir(), t.TempDir())

	// Neither the run directory nor the paths exist; nothing should panic
	// or error.
	cleaner.CleanupMaterials([]*ent.SourceMaterial{
		{OutputArtifacts: map[string]interface{}{"run_id": "gone"}},
		{OutputArtifacts: map[string]interface{}{"individual_summary_path": "/nonexistent/summary.txt"}},
		{OutputArtifacts: nil},
	})
}

func TestCleanupUploadDir(t *testing.T) {
	uploadDir := t.TempDir()
	cleaner := NewArtifactCleaner(t.TempDir(), uploadDir)

	jobDir := filepath.Join(uploadDir, "42")
	writeFile(t, filepath.Join(jobDir, "recording.wav"))

	cleaner.CleanupUploadDir(42)

	_, err := os.Stat(jobDir)
	assert.True(t, os.IsNotExist(err))
}

func TestCleanupUploadDirWithoutRootConfigured(t *testing.T) {
	cleaner := NewArtifactCleaner(t.TempDir(), "")
	cleaner.CleanupUploadDir(7)
}
