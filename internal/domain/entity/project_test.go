package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectStatus_StageIndex(t *testing.T) {
	assert.Equal(t, 0, ProjectStatusAnalysis.StageIndex())
	assert.Equal(t, 4, ProjectStatusCompleted.StageIndex())
	assert.Equal(t, -1, ProjectStatus("shipping").StageIndex())
}

func TestProjectStatus_CanAdvanceTo(t *testing.T) {
	// Forward moves, including skips, are legal.
	assert.True(t, ProjectStatusAnalysis.CanAdvanceTo(ProjectStatusDesign))
	assert.True(t, ProjectStatusAnalysis.CanAdvanceTo(ProjectStatusCompleted))
	assert.True(t, ProjectStatusDeployment.CanAdvanceTo(ProjectStatusCompleted))

	// Staying put or moving backward is not.
	assert.False(t, ProjectStatusDesign.CanAdvanceTo(ProjectStatusDesign))
	assert.False(t, ProjectStatusBackend.CanAdvanceTo(ProjectStatusAnalysis))

	// Unknown stages are rejected on either side.
	assert.False(t, ProjectStatusAnalysis.CanAdvanceTo(ProjectStatus("shipping")))
	assert.False(t, ProjectStatus("shipping").CanAdvanceTo(ProjectStatusCompleted))
}
