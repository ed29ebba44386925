package services

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/recapd/recapd/ent"
)

// ArtifactCleaner removes the filesystem residue of deleted entities: run
// directories referenced from output_artifacts and per-job upload
// directories. Removal is best-effort: absent files are ignored and I/O
// errors are logged, never propagated, so a delete cascade is never
// aborted by the filesystem.
type ArtifactCleaner struct {
	runsDir   string
	uploadDir string
}

// NewArtifactCleaner creates a cleaner over the runs and upload roots.
func NewArtifactCleaner(runsDir, uploadDir string) *ArtifactCleaner {
	return &ArtifactCleaner{runsDir: runsDir, uploadDir: uploadDir}
}

// CleanupMaterials removes the artifact files of the given materials.
func (c *ArtifactCleaner) CleanupMaterials(materials []*ent.SourceMaterial) {
	for _, mat := range materials {
		c.cleanupMaterial(mat)
	}
}

// cleanupMaterial removes the material's run directory when the artifacts
// carry a run id, and otherwise falls back to the individual artifact
// paths.
func (c *ArtifactCleaner) cleanupMaterial(mat *ent.SourceMaterial) {
	if mat.OutputArtifacts == nil {
		return
	}

	if runID, ok := mat.OutputArtifacts["run_id"].(string); ok && runID != "" {
		// Refuse run ids that would escape the runs root.
		dir := filepath.Join(c.runsDir, filepath.Base(runID))
		c.remove(dir, true)
		return
	}

	for _, key := range []string{"speaker_attributed_text_path", "individual_summary_path"} {
		if path, ok := mat.OutputArtifacts[key].(string); ok && path != "" {
			c.remove(path, false)
		}
	}
}

// CleanupUploadDir removes the job's upload directory.
func (c *ArtifactCleaner) CleanupUploadDir(jobID int) {
	if c.uploadDir == "" {
		return
	}
	c.remove(filepath.Join(c.uploadDir, fmt.Sprint(jobID)), true)
}

func (c *ArtifactCleaner) remove(path string, recursive bool) {
	var err error
	if recursive {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to remove artifact", "path", path, "error", err)
	}
}
