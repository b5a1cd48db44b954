package types

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupFileExisted(t *testing.T) {
	b := NewBackup(uuid.New(), nil, "", "unused")
	b.RecordNewFile("a.md")
	b.RecordExistingFile("b.md", []byte("content"))
	b.RecordExistingFile("c.md", []byte{})
	b.RecordExistingFile("d.md", nil) // normalized to an existing empty file

	assert.False(t, b.Files[0].Existed())
	assert.True(t, b.Files[1].Existed())
	assert.True(t, b.Files[2].Existed())
	assert.True(t, b.Files[3].Existed())

	// Hash present exactly when content is
	assert.Empty(t, b.Files[0].SHA256)
	for _, f := range b.Files[1:] {
		assert.Len(t, f.SHA256, 64)
	}
}

func TestBackupFileJSONDistinguishesNewFromEmpty(t *testing.T) {
	b := NewBackup(uuid.New(), nil, "", "unused")
	b.RecordNewFile("new.md")
	b.RecordExistingFile("empty.md", []byte{})

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var decoded Backup
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Len(t, decoded.Files, 2)
	assert.False(t, decoded.Files[0].Existed(), "new file must stay 'did not exist'")
	assert.True(t, decoded.Files[1].Existed(), "empty file must stay 'existed'")
	assert.Empty(t, decoded.Files[1].OriginalContent)
}

func TestDiffPlanHelpers(t *testing.T) {
	plan := &DiffPlan{}
	assert.True(t, plan.IsEmpty())
	assert.False(t, plan.HasErrors())

	plan.Operations = append(plan.Operations, FileOperation{Type: OpCreate, Path: "CLAUDE.md"})
	assert.False(t, plan.IsEmpty())

	plan.Warnings = append(plan.Warnings, Warning{Severity: SeverityWarning, Message: "dirty"})
	assert.False(t, plan.HasErrors())

	plan.Warnings = append(plan.Warnings, Warning{Severity: SeverityError, Message: "bad"})
	assert.True(t, plan.HasErrors())
}

func TestProfileIsEmpty(t *testing.T) {
	p := &Profile{ID: uuid.New(), Name: "x"}
	assert.True(t, p.IsEmpty())

	p.Overlays.Skills = []FileOverlay{{Name: "s", Content: "c"}}
	assert.False(t, p.IsEmpty())
}
