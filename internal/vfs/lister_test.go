package vfs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcfs-org/arcfs/internal/model"
	"github.com/arcfs-org/arcfs/pkg/utils"
)

func TestReadDirRootOrder(t *testing.T) {
	root := &model.Folder{
		Folders: []*model.Folder{{Name: "A"}, {Name: "B"}},
		Files:   []*model.File{{Name: "f1"}, {Name: "f2"}},
	}
	require.Equal(t, []string{"A", "B", "f1", "f2"}, ReadDir(root, nil))
}

func TestReadDirConcatenatesDuplicateBranches(t *testing.T) {
	root := &model.Folder{
		Folders: []*model.Folder{
			{Name: "Textures", Files: []*model.File{{Name: "a.dds"}}},
			{Name: "Textures", Folders: []*model.Folder{{Name: "hi"}}, Files: []*model.File{{Name: "a.dds"}, {Name: "b.dds"}}},
		},
	}
	// Both branches contribute, duplicates included, in branch order.
	require.Equal(t,
		[]string{"a.dds", "hi", "a.dds", "b.dds"},
		ReadDir(root, utils.SplitPath("Textures")))
}

func TestReadDirMissingPathIsEmpty(t *testing.T) {
	root := &model.Folder{Folders: []*model.Folder{{Name: "A"}}}
	require.Empty(t, ReadDir(root, utils.SplitPath("missing")))
	// Case mismatch is a miss too.
	require.Empty(t, ReadDir(root, utils.SplitPath("a")))
}
