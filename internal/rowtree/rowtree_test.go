package rowtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type optionRow struct {
	GroupID  string
	OptionID string
	Image    string
}

type group struct {
	ID      string
	Options []*option
}

type option struct {
	ID     string
	Images []string
}

func newBuilder(dedupe bool) *Builder[optionRow] {
	return &Builder[optionRow]{
		Levels: []Level[optionRow]{
			{
				Key:   func(r optionRow) string { return r.GroupID },
				Start: func(r optionRow) any { return &group{ID: r.GroupID} },
			},
			{
				Key:   func(r optionRow) string { return r.OptionID },
				Start: func(r optionRow) any { return &option{ID: r.OptionID} },
				Attach: func(parent, node any) {
					g := parent.(*group)
					g.Options = append(g.Options, node.(*option))
				},
			},
		},
		Leaf: func(node any, r optionRow) {
			if r.Image != "" {
				o := node.(*option)
				o.Images = append(o.Images, r.Image)
			}
		},
		DedupeByKey: dedupe,
	}
}

func groups(roots []any) []*group {
	out := make([]*group, 0, len(roots))
	for _, r := range roots {
		out = append(out, r.(*group))
	}
	return out
}

func TestBuildEmptyInput(t *testing.T) {
	roots := newBuilder(false).Build(nil)
	require.Empty(t, roots)
}

func TestBuildAccumulatesImagesInRowOrder(t *testing.T) {
	rows := []optionRow{
		{GroupID: "g1", OptionID: "o1", Image: "a.png"},
		{GroupID: "g1", OptionID: "o1", Image: "b.png"},
		{GroupID: "g1", OptionID: "o1", Image: "c.png"},
	}

	gs := groups(newBuilder(false).Build(rows))
	require.Len(t, gs, 1)
	require.Len(t, gs[0].Options, 1)
	require.Equal(t, []string{"a.png", "b.png", "c.png"}, gs[0].Options[0].Images)
}

func TestBuildSkipsNullImageRows(t *testing.T) {
	rows := []optionRow{
		{GroupID: "g1", OptionID: "o1", Image: "a.png"},
		{GroupID: "g1", OptionID: "o1"},
		{GroupID: "g1", OptionID: "o1", Image: "b.png"},
	}

	gs := groups(newBuilder(false).Build(rows))
	require.Len(t, gs, 1)
	require.Equal(t, []string{"a.png", "b.png"}, gs[0].Options[0].Images)
}

func TestBuildOuterKeyChangeResetsInnerCursor(t *testing.T) {
	// Same option id appearing under two adjacent groups must yield two
	// distinct option nodes, one under each group.
	rows := []optionRow{
		{GroupID: "g1", OptionID: "o1", Image: "a.png"},
		{GroupID: "g2", OptionID: "o1", Image: "b.png"},
	}

	gs := groups(newBuilder(false).Build(rows))
	require.Len(t, gs, 2)
	require.Len(t, gs[0].Options, 1)
	require.Len(t, gs[1].Options, 1)
	require.Equal(t, []string{"a.png"}, gs[0].Options[0].Images)
	require.Equal(t, []string{"b.png"}, gs[1].Options[0].Images)
}

// Unsorted input is a documented hazard, not a should-never-happen: a key
// that reappears non-contiguously starts a second node for the same key.
func TestBuildUnsortedInputDuplicatesNodes(t *testing.T) {
	rows := []optionRow{
		{GroupID: "g1", OptionID: "o1", Image: "a.png"},
		{GroupID: "g2", OptionID: "o2", Image: "b.png"},
		{GroupID: "g1", OptionID: "o1", Image: "c.png"},
	}

	gs := groups(newBuilder(false).Build(rows))
	require.Len(t, gs, 3)
	require.Equal(t, "g1", gs[0].ID)
	require.Equal(t, "g2", gs[1].ID)
	require.Equal(t, "g1", gs[2].ID)
	require.Equal(t, []string{"c.png"}, gs[2].Options[0].Images)
}

func TestBuildDedupeByKeyMergesNonContiguousKeys(t *testing.T) {
	rows := []optionRow{
		{GroupID: "g1", OptionID: "o1", Image: "a.png"},
		{GroupID: "g2", OptionID: "o2", Image: "b.png"},
		{GroupID: "g1", OptionID: "o1", Image: "c.png"},
	}

	gs := groups(newBuilder(true).Build(rows))
	require.Len(t, gs, 2)
	require.Equal(t, []string{"a.png", "c.png"}, gs[0].Options[0].Images)
}

func TestBuildSameInnerKeyAcrossParentsWithDedupe(t *testing.T) {
	// Keys are indexed by their full path, so "o1" under g1 and "o1"
	// under g2 stay separate nodes even in dedupe mode.
	rows := []optionRow{
		{GroupID: "g1", OptionID: "o1", Image: "a.png"},
		{GroupID: "g2", OptionID: "o1", Image: "b.png"},
	}

	gs := groups(newBuilder(true).Build(rows))
	require.Len(t, gs, 2)
	require.Equal(t, []string{"a.png"}, gs[0].Options[0].Images)
	require.Equal(t, []string{"b.png"}, gs[1].Options[0].Images)
}
